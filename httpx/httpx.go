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

// Package httpx writes silabs errors as HTTP responses.
//
// The body is a protojson-encoded google.rpc.Status, the same message gRPC
// carries, so HTTP and gRPC clients see identical details:
//
//	{"code":16,"message":"wrong passphrase","details":[{"@type":
//	 "type.googleapis.com/google.rpc.ErrorInfo","reason":"WIFI_INVALID_KEY",...}]}
package httpx

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"dirpx.dev/silabs"
	"dirpx.dev/silabs/apis"
	"dirpx.dev/silabs/grpcx"
	"dirpx.dev/silabs/status"
	"github.com/google/uuid"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	spb "google.golang.org/genproto/googleapis/rpc/status"
	gstatus "google.golang.org/grpc/status"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/anypb"
	"google.golang.org/protobuf/types/known/durationpb"
)

// ContentType is the media type of error bodies.
const ContentType = "application/json"

// RequestIDHeader echoes the request id attached to an error body.
const RequestIDHeader = "X-Request-Id"

// Meta carries extra context that the HTTP layer can add on top of
// silabs.Error. All fields are optional and typically come from request
// context, headers, rate-limiter output, or router-level logic.
type Meta struct {
	RequestID         string
	RetryAfterSeconds int32
	Links             []*errdetails.Help_Link
	Fields            []*errdetails.BadRequest_FieldViolation
	Tags              map[string]string
}

// Writer is a thin adapter that knows how to turn a silabs.Error into an HTTP
// response using the provided status mapper.
type Writer struct {
	Mapper apis.Mapper

	// GenerateRequestID assigns a random UUID when Meta.RequestID is empty.
	GenerateRequestID bool
}

// Write serializes err and writes it to the response writer. The HTTP status
// is resolved via the Mapper.
//
// No automatic redaction or filtering is performed here: whatever is present
// in the error and Meta is exposed as-is. Higher-level handlers should apply
// policies if needed.
func (w Writer) Write(rw http.ResponseWriter, err *silabs.Error, meta Meta) {
	if err == nil {
		return
	}
	s := err.ErrorStatus()
	if s == nil {
		s = status.Fail
	}
	st := w.Mapper.Status(s)
	if meta.RequestID == "" && w.GenerateRequestID {
		meta.RequestID = uuid.NewString()
	}

	body := &spb.Status{
		Code:    int32(st.GRPC),
		Message: err.Message,
	}
	for _, d := range details(err, meta) {
		if a, aerr := anypb.New(d); aerr == nil {
			body.Details = append(body.Details, a)
		}
	}

	rw.Header().Set("Content-Type", ContentType)
	if meta.RequestID != "" {
		rw.Header().Set(RequestIDHeader, meta.RequestID)
	}
	if meta.RetryAfterSeconds > 0 {
		rw.Header().Set("Retry-After", strconv.Itoa(int(meta.RetryAfterSeconds)))
	}
	rw.WriteHeader(st.HTTP)

	// protojson is required for Any expansion and json_name field names.
	b, _ := (protojson.MarshalOptions{
		EmitUnpopulated: false,
		UseProtoNames:   false, // use json_name
	}).Marshal(body)
	_, _ = rw.Write(b)
}

// WriteError writes any error. Errors without a *silabs.Error in their chain
// are reported as status.Fail with a generic message, so internal text does
// not leak.
func (w Writer) WriteError(rw http.ResponseWriter, err error, meta Meta) {
	if err == nil {
		return
	}
	var se *silabs.Error
	if !errors.As(err, &se) {
		se = silabs.E(status.Fail, http.StatusText(http.StatusInternalServerError)).WithCause(err)
	}
	w.Write(rw, se, meta)
}

func details(err *silabs.Error, meta Meta) []proto.Message {
	out := []proto.Message{grpcx.NewErrorInfo(err, meta.Tags)}
	if meta.RequestID != "" {
		out = append(out, &errdetails.RequestInfo{RequestId: meta.RequestID})
	}
	if meta.RetryAfterSeconds > 0 {
		out = append(out, &errdetails.RetryInfo{
			RetryDelay: durationpb.New(secondsToDuration(meta.RetryAfterSeconds)),
		})
	}
	if len(meta.Fields) > 0 {
		out = append(out, &errdetails.BadRequest{FieldViolations: meta.Fields})
	}
	if len(meta.Links) > 0 {
		out = append(out, &errdetails.Help{Links: meta.Links})
	}
	return out
}

// Decode parses an error body written by Writer back into a *silabs.Error.
func Decode(body []byte) (*silabs.Error, error) {
	var st spb.Status
	if err := protojson.Unmarshal(body, &st); err != nil {
		return nil, fmt.Errorf("httpx: decode body: %w", err)
	}
	e, ok := grpcx.FromStatus(gstatus.FromProto(&st))
	if !ok {
		return nil, fmt.Errorf("httpx: body carries no %s ErrorInfo", grpcx.Domain)
	}
	return e, nil
}

func secondsToDuration(s int32) time.Duration {
	return time.Duration(s) * time.Second
}
