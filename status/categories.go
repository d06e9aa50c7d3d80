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

package status

import "fmt"

// Generic holds the two flat status values that do not belong to any
// sub-category.
type Generic uint32

const (
	// Ok indicates success.
	Ok Generic = 0x0000
	// Fail is the generic, unclassified failure.
	Fail Generic = 0x0001
)

// State codes report that an operation conflicts with the current state of
// the component.
type State uint32

const (
	StateInvalid            State = 0x0002
	StateNotReady           State = 0x0003
	StateBusy               State = 0x0004
	StateInProgress         State = 0x0005
	StateAbort              State = 0x0006
	StateTimeout            State = 0x0007
	StatePermission         State = 0x0008
	StateWouldBlock         State = 0x0009
	StateIdle               State = 0x000A
	StateIsWaiting          State = 0x000B
	StateNoneWaiting        State = 0x000C
	StateSuspended          State = 0x000D
	StateNotAvailable       State = 0x000E
	StateNotSupported       State = 0x000F
	StateInitialization     State = 0x0010
	StateNotInitialized     State = 0x0011
	StateAlreadyInitialized State = 0x0012
	StateDeleted            State = 0x0013
	StateIsr                State = 0x0014
	StateNetworkUp          State = 0x0015
	StateNetworkDown        State = 0x0016
	StateNotJoined          State = 0x0017
	StateNoBeacons          State = 0x0018
)

// Alloc codes report allocation and ownership failures.
type Alloc uint32

const (
	AllocAllocationFailed Alloc = 0x0019
	AllocNoMoreResource   Alloc = 0x001A
	AllocStatusEmpty      Alloc = 0x001B
	AllocStatusFull       Alloc = 0x001C
	AllocWouldOverflow    Alloc = 0x001D
	AllocHasOverflowed    Alloc = 0x001E
	AllocOwnership        Alloc = 0x001F
	AllocIsOwner          Alloc = 0x0020
)

// Param codes report invalid arguments.
type Param uint32

const (
	ParamInvalidParameter     Param = 0x0021
	ParamNullPointer          Param = 0x0022
	ParamInvalidConfiguration Param = 0x0023
	ParamInvalidMode          Param = 0x0024
	ParamInvalidHandle        Param = 0x0025
	ParamInvalidType          Param = 0x0026
	ParamInvalidIndex         Param = 0x0027
	ParamInvalidRange         Param = 0x0028
	ParamInvalidKey           Param = 0x0029
	ParamInvalidCredentials   Param = 0x002A
	ParamInvalidCount         Param = 0x002B
	ParamNotFound             Param = 0x002C
	ParamAlreadyExists        Param = 0x002D
)

// Io codes report transmit/receive and object access failures.
type Io uint32

const (
	IoGenericFailure     Io = 0x002E
	IoTimeout            Io = 0x002F
	IoTransmit           Io = 0x0030
	IoTransmitUnderflow  Io = 0x0031
	IoTransmitIncomplete Io = 0x0032
	IoTransmitBusy       Io = 0x0033
	IoReceive            Io = 0x0034
	IoObjectRead         Io = 0x0035
	IoObjectWrite        Io = 0x0036
	IoMessageTooLong     Io = 0x0037
)

// Eeprom codes report non-volatile token version mismatches.
type Eeprom uint32

const (
	EepromMfgVersionMismatch   Eeprom = 0x0038
	EepromStackVersionMismatch Eeprom = 0x0039
)

// Flash codes report flash programming failures.
type Flash uint32

const (
	FlashWriteInhibited Flash = 0x003A
	FlashVerifyFailed   Flash = 0x003B
	FlashProgramFailed  Flash = 0x003C
	FlashEraseFailed    Flash = 0x003D
)

// Mac codes report 802.15.4 MAC layer failures.
type Mac uint32

const (
	MacNoData                 Mac = 0x003E
	MacNoAckReceived          Mac = 0x003F
	MacIndirectTimeout        Mac = 0x0040
	MacUnknownHeaderType      Mac = 0x0041
	MacAckHeaderType          Mac = 0x0042
	MacCommandTransmitFailure Mac = 0x0043
)

// Cli codes report command line storage failures.
type Cli uint32

const (
	CliStorageNvmOpenError Cli = 0x0044
)

// Security codes report image and decryption failures.
type Security uint32

const (
	SecurityImageChecksumError Security = 0x0045
	SecurityDecryptError       Security = 0x0046
)

// Command codes report malformed commands.
type Command uint32

const (
	CommandIsInvalid  Command = 0x0047
	CommandTooLong    Command = 0x0048
	CommandIncomplete Command = 0x0049
)

// Wifi codes live in the Wifi space. The range is sparse: 0x0B06, 0x0B07,
// 0x0B0A..0x0B0F and 0x0B15..0x0B17 are unassigned.
type Wifi uint32

const (
	WifiInvalidKey                    Wifi = 0x0B01
	WifiFirmwareDownloadTimeout       Wifi = 0x0B02
	WifiUnsupportedMessageID          Wifi = 0x0B03
	WifiWarning                       Wifi = 0x0B04
	WifiNoPacketToReceive             Wifi = 0x0B05
	WifiSleepGranted                  Wifi = 0x0B08
	WifiSleepNotGranted               Wifi = 0x0B09
	WifiSecureLinkMacKeyError         Wifi = 0x0B10
	WifiSecureLinkMacKeyAlreadyBurned Wifi = 0x0B11
	WifiSecureLinkRAMModeNotAllowed   Wifi = 0x0B12
	WifiSecureLinkFailedUnknownMode   Wifi = 0x0B13
	WifiSecureLinkExchangeFailed      Wifi = 0x0B14
	WifiWrongState                    Wifi = 0x0B18
	WifiChannelNotAllowed             Wifi = 0x0B19
	WifiNoMatchingAp                  Wifi = 0x0B1A
	WifiConnectionAborted             Wifi = 0x0B1B
	WifiConnectionTimeout             Wifi = 0x0B1C
	WifiConnectionRejectedByAp        Wifi = 0x0B1D
	WifiConnectionAuthFailure         Wifi = 0x0B1E
	WifiRetryExceeded                 Wifi = 0x0B1F
	WifiTxLifetimeExceeded            Wifi = 0x0B20
)

// Variant names as they appear in the display form, after the category tag.
var (
	genericNames = map[Generic]string{
		Ok:   "Ok",
		Fail: "Fail",
	}

	stateNames = map[State]string{
		StateInvalid:            "Invalid",
		StateNotReady:           "NotReady",
		StateBusy:               "Busy",
		StateInProgress:         "InProgress",
		StateAbort:              "Abort",
		StateTimeout:            "Timeout",
		StatePermission:         "Permission",
		StateWouldBlock:         "WouldBlock",
		StateIdle:               "Idle",
		StateIsWaiting:          "IsWaiting",
		StateNoneWaiting:        "NoneWaiting",
		StateSuspended:          "Suspended",
		StateNotAvailable:       "NotAvailable",
		StateNotSupported:       "NotSupported",
		StateInitialization:     "Initialization",
		StateNotInitialized:     "NotInitialized",
		StateAlreadyInitialized: "AlreadyInitialized",
		StateDeleted:            "Deleted",
		StateIsr:                "Isr",
		StateNetworkUp:          "NetworkUp",
		StateNetworkDown:        "NetworkDown",
		StateNotJoined:          "NotJoined",
		StateNoBeacons:          "NoBeacons",
	}

	allocNames = map[Alloc]string{
		AllocAllocationFailed: "AllocationFailed",
		AllocNoMoreResource:   "NoMoreResource",
		AllocStatusEmpty:      "StatusEmpty",
		AllocStatusFull:       "StatusFull",
		AllocWouldOverflow:    "WouldOverflow",
		AllocHasOverflowed:    "HasOverflowed",
		AllocOwnership:        "Ownership",
		AllocIsOwner:          "IsOwner",
	}

	paramNames = map[Param]string{
		ParamInvalidParameter:     "InvalidParameter",
		ParamNullPointer:          "NullPointer",
		ParamInvalidConfiguration: "InvalidConfiguration",
		ParamInvalidMode:          "InvalidMode",
		ParamInvalidHandle:        "InvalidHandle",
		ParamInvalidType:          "InvalidType",
		ParamInvalidIndex:         "InvalidIndex",
		ParamInvalidRange:         "InvalidRange",
		ParamInvalidKey:           "InvalidKey",
		ParamInvalidCredentials:   "InvalidCredentials",
		ParamInvalidCount:         "InvalidCount",
		ParamNotFound:             "NotFound",
		ParamAlreadyExists:        "AlreadyExists",
	}

	ioNames = map[Io]string{
		IoGenericFailure:     "GenericFailure",
		IoTimeout:            "Timeout",
		IoTransmit:           "Transmit",
		IoTransmitUnderflow:  "TransmitUnderflow",
		IoTransmitIncomplete: "TransmitIncomplete",
		IoTransmitBusy:       "TransmitBusy",
		IoReceive:            "Receive",
		IoObjectRead:         "ObjectRead",
		IoObjectWrite:        "ObjectWrite",
		IoMessageTooLong:     "MessageTooLong",
	}

	eepromNames = map[Eeprom]string{
		EepromMfgVersionMismatch:   "MfgVersionMismatch",
		EepromStackVersionMismatch: "StackVersionMismatch",
	}

	flashNames = map[Flash]string{
		FlashWriteInhibited: "WriteInhibited",
		FlashVerifyFailed:   "VerifyFailed",
		FlashProgramFailed:  "ProgramFailed",
		FlashEraseFailed:    "EraseFailed",
	}

	macNames = map[Mac]string{
		MacNoData:                 "NoData",
		MacNoAckReceived:          "NoAckReceived",
		MacIndirectTimeout:        "IndirectTimeout",
		MacUnknownHeaderType:      "UnknownHeaderType",
		MacAckHeaderType:          "AckHeaderType",
		MacCommandTransmitFailure: "CommandTransmitFailure",
	}

	cliNames = map[Cli]string{
		CliStorageNvmOpenError: "StorageNvmOpenError",
	}

	securityNames = map[Security]string{
		SecurityImageChecksumError: "ImageChecksumError",
		SecurityDecryptError:       "DecryptError",
	}

	commandNames = map[Command]string{
		CommandIsInvalid:  "IsInvalid",
		CommandTooLong:    "TooLong",
		CommandIncomplete: "Incomplete",
	}

	wifiNames = map[Wifi]string{
		WifiInvalidKey:                    "InvalidKey",
		WifiFirmwareDownloadTimeout:       "FirmwareDownloadTimeout",
		WifiUnsupportedMessageID:          "UnsupportedMessageId",
		WifiWarning:                       "Warning",
		WifiNoPacketToReceive:             "NoPacketToReceive",
		WifiSleepGranted:                  "SleepGranted",
		WifiSleepNotGranted:               "SleepNotGranted",
		WifiSecureLinkMacKeyError:         "SecureLinkMacKeyError",
		WifiSecureLinkMacKeyAlreadyBurned: "SecureLinkMacKeyAlreadyBurned",
		WifiSecureLinkRAMModeNotAllowed:   "SecureLinkRamModeNotAllowed",
		WifiSecureLinkFailedUnknownMode:   "SecureLinkFailedUnknownMode",
		WifiSecureLinkExchangeFailed:      "SecureLinkExchangeFailed",
		WifiWrongState:                    "WrongState",
		WifiChannelNotAllowed:             "ChannelNotAllowed",
		WifiNoMatchingAp:                  "NoMatchingAp",
		WifiConnectionAborted:             "ConnectionAborted",
		WifiConnectionTimeout:             "ConnectionTimeout",
		WifiConnectionRejectedByAp:        "ConnectionRejectedByAp",
		WifiConnectionAuthFailure:         "ConnectionAuthFailure",
		WifiRetryExceeded:                 "RetryExceeded",
		WifiTxLifetimeExceeded:            "TxLifetimeExceeded",
	}
)

// Method sets. Every category type implements Status the same way; only the
// category tag and the name table differ.

func (g Generic) Code() uint32                  { return uint32(g) }
func (Generic) Category() Category              { return CategoryGeneric }
func (g Generic) Name() string                  { return nameOf(genericNames, g) }
func (g Generic) String() string                { return display(g) }
func (g Generic) Format(f fmt.State, verb rune) { format(f, verb, g.Code(), g.String()) }
func (g Generic) Valid() bool {
	_, ok := genericNames[g]
	return ok
}
func (Generic) sealed() {}

func (s State) Code() uint32                  { return uint32(s) }
func (State) Category() Category              { return CategoryState }
func (s State) Name() string                  { return nameOf(stateNames, s) }
func (s State) String() string                { return display(s) }
func (s State) Format(f fmt.State, verb rune) { format(f, verb, s.Code(), s.String()) }
func (s State) Valid() bool {
	_, ok := stateNames[s]
	return ok
}
func (State) sealed() {}

func (a Alloc) Code() uint32                  { return uint32(a) }
func (Alloc) Category() Category              { return CategoryAlloc }
func (a Alloc) Name() string                  { return nameOf(allocNames, a) }
func (a Alloc) String() string                { return display(a) }
func (a Alloc) Format(f fmt.State, verb rune) { format(f, verb, a.Code(), a.String()) }
func (a Alloc) Valid() bool {
	_, ok := allocNames[a]
	return ok
}
func (Alloc) sealed() {}

func (p Param) Code() uint32                  { return uint32(p) }
func (Param) Category() Category              { return CategoryParam }
func (p Param) Name() string                  { return nameOf(paramNames, p) }
func (p Param) String() string                { return display(p) }
func (p Param) Format(f fmt.State, verb rune) { format(f, verb, p.Code(), p.String()) }
func (p Param) Valid() bool {
	_, ok := paramNames[p]
	return ok
}
func (Param) sealed() {}

func (i Io) Code() uint32                  { return uint32(i) }
func (Io) Category() Category              { return CategoryIo }
func (i Io) Name() string                  { return nameOf(ioNames, i) }
func (i Io) String() string                { return display(i) }
func (i Io) Format(f fmt.State, verb rune) { format(f, verb, i.Code(), i.String()) }
func (i Io) Valid() bool {
	_, ok := ioNames[i]
	return ok
}
func (Io) sealed() {}

func (e Eeprom) Code() uint32                  { return uint32(e) }
func (Eeprom) Category() Category              { return CategoryEeprom }
func (e Eeprom) Name() string                  { return nameOf(eepromNames, e) }
func (e Eeprom) String() string                { return display(e) }
func (e Eeprom) Format(f fmt.State, verb rune) { format(f, verb, e.Code(), e.String()) }
func (e Eeprom) Valid() bool {
	_, ok := eepromNames[e]
	return ok
}
func (Eeprom) sealed() {}

func (fl Flash) Code() uint32                  { return uint32(fl) }
func (Flash) Category() Category               { return CategoryFlash }
func (fl Flash) Name() string                  { return nameOf(flashNames, fl) }
func (fl Flash) String() string                { return display(fl) }
func (fl Flash) Format(f fmt.State, verb rune) { format(f, verb, fl.Code(), fl.String()) }
func (fl Flash) Valid() bool {
	_, ok := flashNames[fl]
	return ok
}
func (Flash) sealed() {}

func (m Mac) Code() uint32                  { return uint32(m) }
func (Mac) Category() Category              { return CategoryMac }
func (m Mac) Name() string                  { return nameOf(macNames, m) }
func (m Mac) String() string                { return display(m) }
func (m Mac) Format(f fmt.State, verb rune) { format(f, verb, m.Code(), m.String()) }
func (m Mac) Valid() bool {
	_, ok := macNames[m]
	return ok
}
func (Mac) sealed() {}

func (c Cli) Code() uint32                  { return uint32(c) }
func (Cli) Category() Category              { return CategoryCli }
func (c Cli) Name() string                  { return nameOf(cliNames, c) }
func (c Cli) String() string                { return display(c) }
func (c Cli) Format(f fmt.State, verb rune) { format(f, verb, c.Code(), c.String()) }
func (c Cli) Valid() bool {
	_, ok := cliNames[c]
	return ok
}
func (Cli) sealed() {}

func (s Security) Code() uint32                  { return uint32(s) }
func (Security) Category() Category              { return CategorySecurity }
func (s Security) Name() string                  { return nameOf(securityNames, s) }
func (s Security) String() string                { return display(s) }
func (s Security) Format(f fmt.State, verb rune) { format(f, verb, s.Code(), s.String()) }
func (s Security) Valid() bool {
	_, ok := securityNames[s]
	return ok
}
func (Security) sealed() {}

func (c Command) Code() uint32                  { return uint32(c) }
func (Command) Category() Category              { return CategoryCommand }
func (c Command) Name() string                  { return nameOf(commandNames, c) }
func (c Command) String() string                { return display(c) }
func (c Command) Format(f fmt.State, verb rune) { format(f, verb, c.Code(), c.String()) }
func (c Command) Valid() bool {
	_, ok := commandNames[c]
	return ok
}
func (Command) sealed() {}

func (w Wifi) Code() uint32                  { return uint32(w) }
func (Wifi) Category() Category              { return CategoryWifi }
func (w Wifi) Name() string                  { return nameOf(wifiNames, w) }
func (w Wifi) String() string                { return display(w) }
func (w Wifi) Format(f fmt.State, verb rune) { format(f, verb, w.Code(), w.String()) }
func (w Wifi) Valid() bool {
	_, ok := wifiNames[w]
	return ok
}
func (Wifi) sealed() {}
