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

// Package grpcx adapts silabs errors to the gRPC error model.
//
// Server side, UnaryServerInterceptor turns a *silabs.Error returned by a
// handler into a status error whose details carry a google.rpc.ErrorInfo:
//
//	reason:   "IO_TIMEOUT"               (upper snake of status.Path)
//	domain:   "silabs.dirpx.dev"
//	metadata: code=0x0000002f name=SlIoTimeout category=Io, plus MetaFn tags
//
// Client side, FromError and UnaryClientInterceptor rebuild the *silabs.Error.
package grpcx

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"dirpx.dev/silabs"
	"dirpx.dev/silabs/apis"
	"dirpx.dev/silabs/status"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	gstatus "google.golang.org/grpc/status"
	"google.golang.org/protobuf/protoadapt"
)

// Domain is the ErrorInfo domain of every error produced by this package.
const Domain = "silabs.dirpx.dev"

// ErrorInfo metadata keys.
const (
	MetaCode     = "code"
	MetaName     = "name"
	MetaCategory = "category"
)

// Extras holds optional, rich metadata attached next to the ErrorInfo. All
// fields are optional.
type Extras struct {
	// Tags are flat string key/value annotations merged into
	// ErrorInfo.Metadata. They cannot replace the code, name or category keys.
	Tags map[string]string

	// Retry provides client retry/backoff hints.
	Retry *errdetails.RetryInfo

	// Request identifies the request that failed (request ID, serving data).
	Request *errdetails.RequestInfo

	// Help carries human-facing links to docs or support.
	Help *errdetails.Help

	// Debug exposes a stack trace or diagnostic detail. Only attach it for
	// trusted clients.
	Debug *errdetails.DebugInfo
}

// MetaFn extracts Extras from context and the domain error.
// It can return an empty Extras if nothing is available.
type MetaFn func(ctx context.Context, e *silabs.Error) Extras

// UnaryServerInterceptor returns a gRPC UnaryServerInterceptor that maps
// *silabs.Error (anywhere in the error chain) into gRPC status errors.
//
// The provided apis.Mapper resolves the gRPC code. The optional MetaFn can
// be used to add tags and extra details; if nil, none are added. Errors that
// are not silabs errors are returned as-is.
func UnaryServerInterceptor(m apis.Mapper, metaFn MetaFn) grpc.UnaryServerInterceptor {
	if metaFn == nil {
		metaFn = func(context.Context, *silabs.Error) Extras { return Extras{} }
	}

	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		resp, err := handler(ctx, req)
		if err == nil {
			return resp, nil
		}

		var se *silabs.Error
		if !errors.As(err, &se) {
			// Not ours, return as-is.
			return nil, err
		}
		return nil, ToStatus(m, se, metaFn(ctx, se)).Err()
	}
}

// ToStatus builds the gRPC status for e. The ErrorInfo detail is always
// attached; extras are attached when set.
//
// A status that maps to codes.OK is reported with the code of status.Fail,
// or codes.Unknown when that is OK as well: an OK status carries no
// details and has no error form.
func ToStatus(m apis.Mapper, e *silabs.Error, ex Extras) *gstatus.Status {
	s := e.ErrorStatus()
	if s == nil {
		s = status.Fail
	}
	base := gstatus.New(errorCode(m, s), e.Message)

	details := []protoadapt.MessageV1{NewErrorInfo(e, ex.Tags)}
	if ex.Retry != nil {
		details = append(details, ex.Retry)
	}
	if ex.Request != nil {
		details = append(details, ex.Request)
	}
	if ex.Help != nil {
		details = append(details, ex.Help)
	}
	if ex.Debug != nil {
		details = append(details, ex.Debug)
	}

	// Try to attach details. On failure return base.
	if with, err := base.WithDetails(details...); err == nil {
		return with
	}
	return base
}

func errorCode(m apis.Mapper, s status.Status) codes.Code {
	if c := m.GRPCStatus(s); c != codes.OK {
		return c
	}
	if c := m.GRPCStatus(status.Fail); c != codes.OK {
		return c
	}
	return codes.Unknown
}

// NewErrorInfo builds the ErrorInfo describing e. Tags are copied into the
// metadata without overriding the reserved keys.
func NewErrorInfo(e *silabs.Error, tags map[string]string) *errdetails.ErrorInfo {
	code := e.ErrorCode()
	md := make(map[string]string, len(tags)+3)
	for k, v := range tags {
		switch k {
		case MetaCode, MetaName, MetaCategory:
			continue
		}
		md[k] = v
	}
	md[MetaCode] = "0x" + strconv.FormatUint(uint64(code), 16)

	reason := "UNKNOWN"
	if s, err := status.Decode(code); err == nil {
		reason = strings.ToUpper(strings.ReplaceAll(status.Path(s), ".", "_"))
		md[MetaName] = s.String()
		md[MetaCategory] = s.Category().String()
	}
	return &errdetails.ErrorInfo{
		Reason:   reason,
		Domain:   Domain,
		Metadata: md,
	}
}

// ExtractInfo pulls the silabs ErrorInfo out of a gRPC error, if present.
// Useful in tests and client code.
func ExtractInfo(err error) (*errdetails.ErrorInfo, bool) {
	if err == nil {
		return nil, false
	}
	st, ok := gstatus.FromError(err)
	if !ok {
		return nil, false
	}
	return infoOf(st)
}

func infoOf(st *gstatus.Status) (*errdetails.ErrorInfo, bool) {
	for _, d := range st.Details() {
		if info, ok := d.(*errdetails.ErrorInfo); ok && info.GetDomain() == Domain {
			return info, true
		}
	}
	return nil, false
}

// FromError rebuilds a *silabs.Error from a gRPC error carrying a silabs
// ErrorInfo. Metadata other than the reserved keys becomes Details; the
// status error is kept as the Cause.
func FromError(err error) (*silabs.Error, bool) {
	if err == nil {
		return nil, false
	}
	st, ok := gstatus.FromError(err)
	if !ok {
		return nil, false
	}
	return FromStatus(st)
}

// FromStatus is FromError for a status value. It also accepts statuses with
// code OK, which have no error form.
func FromStatus(st *gstatus.Status) (*silabs.Error, bool) {
	info, ok := infoOf(st)
	if !ok {
		return nil, false
	}
	code, err := strconv.ParseUint(strings.TrimPrefix(info.GetMetadata()[MetaCode], "0x"), 16, 32)
	if err != nil {
		return nil, false
	}

	e := silabs.FromCode(uint32(code), st.Message())
	for k, v := range info.GetMetadata() {
		switch k {
		case MetaCode, MetaName, MetaCategory:
			continue
		}
		e = e.WithDetail(k, v)
	}
	if e.Cause != nil {
		// Keep the decode failure of an unknown code next to the status error.
		return e.WithCause(errors.Join(e.Cause, st.Err())), true
	}
	return e.WithCause(st.Err()), true
}

// UnaryClientInterceptor converts silabs status errors returned by the
// server back into *silabs.Error. Other errors pass through unchanged.
func UnaryClientInterceptor() grpc.UnaryClientInterceptor {
	return func(ctx context.Context, method string, req, reply any, cc *grpc.ClientConn, invoker grpc.UnaryInvoker, opts ...grpc.CallOption) error {
		err := invoker(ctx, method, req, reply, cc, opts...)
		if err == nil {
			return nil
		}
		if e, ok := FromError(err); ok {
			return e
		}
		return err
	}
}
