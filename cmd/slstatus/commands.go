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

package main

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"dirpx.dev/silabs/adapter"
	"dirpx.dev/silabs/apis"
	"dirpx.dev/silabs/codec"
	"dirpx.dev/silabs/status"
	"dirpx.dev/silabs/zigbee/eui64"
	"dirpx.dev/silabs/zigbee/secman"
	"google.golang.org/grpc/codes"
)

func (e *env) statusCmd(args []string) error {
	if len(args) == 0 {
		return usageError("status: need at least one code or name")
	}
	unknown := 0
	for _, arg := range args {
		s, err := status.Parse(arg)
		var invalid *status.InvalidStatusError
		switch {
		case err == nil:
			if err := e.emitDescriptor(adapter.Describe(s, e.mapper)); err != nil {
				return err
			}
			if e.opts.explain {
				fmt.Fprintln(e.out, indent(e.mapper.Explain(s)))
			}
		case errors.As(err, &invalid):
			unknown++
			e.log.Warn().Str("input", arg).Str("code", fmt.Sprintf("0x%08x", invalid.Code)).Msg("not a defined status")
			if err := e.emitDescriptor(adapter.DescribeCode(invalid.Code, e.mapper)); err != nil {
				return err
			}
		default:
			return usageError("status: %v", err)
		}
	}
	if unknown > 0 {
		return &exitError{code: 1, msg: fmt.Sprintf("%d unknown status code(s)", unknown)}
	}
	return nil
}

func (e *env) spaceCmd(args []string) error {
	if len(args) == 0 {
		return usageError("space: need at least one code or name")
	}
	unknown := 0
	for _, arg := range args {
		sp, err := status.ParseSpace(arg)
		var invalid *status.InvalidSpaceError
		switch {
		case err == nil:
			err = e.emit(spaceView{Code: status.EncodeSpace(sp), Space: sp.String()},
				fmt.Sprintf("%x %s", sp, sp))
		case errors.As(err, &invalid):
			// Not a space value itself; report the space the code lives in.
			owner, serr := status.SpaceOf(invalid.Code)
			if serr != nil {
				unknown++
				e.log.Warn().Str("input", arg).Msg("code belongs to no space")
				err = e.emit(spaceView{Code: invalid.Code},
					fmt.Sprintf("0x%08x -", invalid.Code))
				break
			}
			err = e.emit(spaceView{Code: invalid.Code, Space: owner.String(), Member: true},
				fmt.Sprintf("0x%08x in %s", invalid.Code, owner))
		default:
			return usageError("space: %v", err)
		}
		if err != nil {
			return err
		}
	}
	if unknown > 0 {
		return &exitError{code: 1, msg: fmt.Sprintf("%d code(s) outside every space", unknown)}
	}
	return nil
}

type spaceView struct {
	Code   uint32 `json:"code" cbor:"1,keyasint"`
	Space  string `json:"space,omitempty" cbor:"2,keyasint,omitempty"`
	Member bool   `json:"member,omitempty" cbor:"3,keyasint,omitempty"`
}

func (e *env) listCmd(args []string) error {
	if len(args) != 0 {
		return usageError("list: takes no arguments")
	}
	for _, s := range status.All() {
		if err := e.emitDescriptor(adapter.Describe(s, e.mapper)); err != nil {
			return err
		}
	}
	return nil
}

// Record kinds accepted by the record command.
const (
	recordNetworkKeyInfo = "network-key-info"
	recordApsKeyMetadata = "aps-key-metadata"
	recordContext        = "context"
)

func (e *env) recordCmd(args []string) error {
	if len(args) != 2 {
		return usageError("record: need <kind> <hex>")
	}
	kind := args[0]
	raw, err := hex.DecodeString(strings.NewReplacer(" ", "", ":", "", "0x", "").Replace(args[1]))
	if err != nil {
		return usageError("record: invalid hex: %v", err)
	}
	e.log.Debug().Str("kind", kind).Int("bytes", len(raw)).Msg("decoding record")

	var fields []field
	switch kind {
	case recordNetworkKeyInfo:
		n, err := secman.DecodeNetworkKeyInfo(raw)
		if err != nil {
			return fmt.Errorf("record %s: %w", kind, err)
		}
		fields = []field{
			{"network_key_set", strconv.FormatBool(n.NetworkKeySet())},
			{"alternate_network_key_set", strconv.FormatBool(n.AlternateNetworkKeySet())},
			{"network_key_sequence_number", strconv.Itoa(int(n.NetworkKeySequenceNumber()))},
			{"alt_network_key_sequence_number", strconv.Itoa(int(n.AltNetworkKeySequenceNumber()))},
			{"network_key_frame_counter", strconv.FormatUint(uint64(n.NetworkKeyFrameCounter()), 10)},
		}
	case recordApsKeyMetadata:
		m, err := secman.DecodeApsKeyMetadata(raw)
		if err != nil {
			return fmt.Errorf("record %s: %w", kind, err)
		}
		fields = []field{
			{"bitmask", fmt.Sprintf("0x%04x", m.Bitmask())},
			{"outgoing_frame_counter", strconv.FormatUint(uint64(m.OutgoingFrameCounter()), 10)},
			{"incoming_frame_counter", strconv.FormatUint(uint64(m.IncomingFrameCounter()), 10)},
			{"ttl", m.TTL().String()},
		}
	case recordContext:
		c, err := secman.DecodeContext(raw, eui64.Codec{})
		if err != nil {
			return fmt.Errorf("record %s: %w", kind, err)
		}
		fields = []field{
			{"key", c.Key().String()},
			{"key_index", strconv.Itoa(int(c.KeyIndex()))},
			{"derived_type", c.DerivedType().String()},
			{"eui64", c.EUI64().String()},
			{"multi_network_index", strconv.Itoa(int(c.MultiNetworkIndex()))},
			{"flags", c.Flags().String()},
			{"psa_key_alg_permission", fmt.Sprintf("0x%08x", c.PSAKeyAlgPermission())},
		}
	default:
		return usageError("record: unknown kind %q (want %s, %s or %s)",
			kind, recordNetworkKeyInfo, recordApsKeyMetadata, recordContext)
	}
	return e.emitFields(fields)
}

type field struct {
	name, value string
}

func (e *env) emitFields(fields []field) error {
	if e.opts.format == "text" {
		for _, f := range fields {
			fmt.Fprintf(e.out, "%-32s %s\n", f.name+":", f.value)
		}
		return nil
	}
	m := make(map[string]string, len(fields))
	for _, f := range fields {
		m[f.name] = f.value
	}
	return e.emit(m, "")
}

func (e *env) emitDescriptor(d apis.ErrorDescriptor) error {
	category := d.Category
	if category == "" {
		category = "-"
	}
	text := fmt.Sprintf("0x%08x %-40s category=%-8s http=%d grpc=%s",
		d.Code, d.Name, category, d.HTTPStatus, codes.Code(d.GRPCCode))
	return e.emit(d, text)
}

// emit writes v in the selected format. text is the line used for the text
// format.
func (e *env) emit(v any, text string) error {
	switch e.opts.format {
	case "json":
		return json.NewEncoder(e.out).Encode(v)
	case "cbor":
		b, err := codec.Marshal(v)
		if err != nil {
			return fmt.Errorf("encode cbor: %w", err)
		}
		diag, err := codec.Diagnose(b)
		if err != nil {
			return fmt.Errorf("diagnose cbor: %w", err)
		}
		_, err = fmt.Fprintf(e.out, "%x %s\n", b, diag)
		return err
	default:
		_, err := fmt.Fprintln(e.out, strings.TrimRight(text, " "))
		return err
	}
}

func indent(s string) string {
	return "  " + strings.ReplaceAll(s, "\n", "\n  ")
}
