/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package mapper

import (
	"net/http"

	"dirpx.dev/silabs/status"
	"google.golang.org/grpc/codes"
)

// defaultCategoryHTTP is the coarse HTTP mapping, one entry per category.
var defaultCategoryHTTP = map[status.Category]int{
	status.CategoryGeneric:  http.StatusInternalServerError,
	status.CategoryState:    http.StatusConflict,           // Device is in the wrong state for the request.
	status.CategoryAlloc:    http.StatusServiceUnavailable, // Device ran out of memory or slots; retry later.
	status.CategoryParam:    http.StatusBadRequest,         // Caller supplied a bad argument.
	status.CategoryIo:       http.StatusBadGateway,         // Link to the radio or peer failed.
	status.CategoryEeprom:   http.StatusInternalServerError,
	status.CategoryFlash:    http.StatusInternalServerError,
	status.CategoryMac:      http.StatusBadGateway, // Over-the-air exchange failed.
	status.CategoryCli:      http.StatusInternalServerError,
	status.CategorySecurity: http.StatusForbidden,
	status.CategoryCommand:  http.StatusBadRequest,
	status.CategoryWifi:     http.StatusBadGateway,
}

// defaultCategoryGRPC is the coarse gRPC mapping, one entry per category.
var defaultCategoryGRPC = map[status.Category]codes.Code{
	status.CategoryGeneric:  codes.Internal,
	status.CategoryState:    codes.FailedPrecondition,
	status.CategoryAlloc:    codes.ResourceExhausted,
	status.CategoryParam:    codes.InvalidArgument,
	status.CategoryIo:       codes.Unavailable,
	status.CategoryEeprom:   codes.FailedPrecondition, // Stored image does not match the running stack.
	status.CategoryFlash:    codes.DataLoss,
	status.CategoryMac:      codes.Unavailable,
	status.CategoryCli:      codes.Internal,
	status.CategorySecurity: codes.PermissionDenied,
	status.CategoryCommand:  codes.InvalidArgument,
	status.CategoryWifi:     codes.Unavailable,
}

// defaultHTTP refines the category mapping for statuses with a clearer
// transport meaning.
var defaultHTTP = map[status.Status]int{
	status.Ok:   http.StatusOK,
	status.Fail: http.StatusInternalServerError,

	// State.
	status.StateNotReady:           http.StatusServiceUnavailable,
	status.StateBusy:               http.StatusServiceUnavailable,
	status.StateTimeout:            http.StatusGatewayTimeout,
	status.StatePermission:         http.StatusForbidden,
	status.StateNotAvailable:       http.StatusServiceUnavailable,
	status.StateNotSupported:       http.StatusNotImplemented,
	status.StateNotInitialized:     http.StatusServiceUnavailable,
	status.StateAlreadyInitialized: http.StatusConflict,
	status.StateDeleted:            http.StatusGone,
	status.StateNetworkDown:        http.StatusServiceUnavailable,

	// Alloc.
	status.AllocOwnership: http.StatusForbidden,

	// Param.
	status.ParamInvalidCredentials: http.StatusUnauthorized,
	status.ParamNotFound:           http.StatusNotFound,
	status.ParamAlreadyExists:      http.StatusConflict,

	// Io.
	status.IoTimeout:        http.StatusGatewayTimeout,
	status.IoMessageTooLong: http.StatusRequestEntityTooLarge,

	// Mac.
	status.MacIndirectTimeout: http.StatusGatewayTimeout,

	// Command.
	status.CommandTooLong: http.StatusRequestEntityTooLarge,

	// Wifi.
	status.WifiInvalidKey:              http.StatusUnauthorized,
	status.WifiFirmwareDownloadTimeout: http.StatusGatewayTimeout,
	status.WifiUnsupportedMessageID:    http.StatusNotImplemented,
	status.WifiConnectionTimeout:       http.StatusGatewayTimeout,
	status.WifiConnectionRejectedByAp:  http.StatusForbidden,
	status.WifiConnectionAuthFailure:   http.StatusUnauthorized,
	status.WifiTxLifetimeExceeded:      http.StatusGatewayTimeout,
}

var defaultGRPC = map[status.Status]codes.Code{
	status.Ok:   codes.OK,
	status.Fail: codes.Unknown,

	// State.
	status.StateNotReady:           codes.Unavailable,
	status.StateBusy:               codes.Unavailable,
	status.StateInProgress:         codes.Aborted,
	status.StateAbort:              codes.Aborted,
	status.StateTimeout:            codes.DeadlineExceeded,
	status.StatePermission:         codes.PermissionDenied,
	status.StateNotAvailable:       codes.Unavailable,
	status.StateNotSupported:       codes.Unimplemented,
	status.StateNotInitialized:     codes.Unavailable,
	status.StateAlreadyInitialized: codes.AlreadyExists,
	status.StateDeleted:            codes.NotFound,
	status.StateNetworkDown:        codes.Unavailable,

	// Alloc.
	status.AllocOwnership: codes.PermissionDenied,

	// Param.
	status.ParamInvalidRange:       codes.OutOfRange,
	status.ParamInvalidIndex:       codes.OutOfRange,
	status.ParamInvalidCredentials: codes.Unauthenticated,
	status.ParamNotFound:           codes.NotFound,
	status.ParamAlreadyExists:      codes.AlreadyExists,

	// Io.
	status.IoTimeout: codes.DeadlineExceeded,

	// Mac.
	status.MacIndirectTimeout: codes.DeadlineExceeded,

	// Wifi.
	status.WifiInvalidKey:              codes.Unauthenticated,
	status.WifiFirmwareDownloadTimeout: codes.DeadlineExceeded,
	status.WifiUnsupportedMessageID:    codes.Unimplemented,
	status.WifiConnectionTimeout:       codes.DeadlineExceeded,
	status.WifiConnectionRejectedByAp:  codes.PermissionDenied,
	status.WifiConnectionAuthFailure:   codes.Unauthenticated,
	status.WifiRetryExceeded:           codes.ResourceExhausted,
	status.WifiTxLifetimeExceeded:      codes.DeadlineExceeded,
}
