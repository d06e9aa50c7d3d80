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

// Package apis defines the public Go-level contracts around firmware status
// errors.
//
// It holds the *small, composable* interfaces that transport adapters and
// tooling depend on without importing the concrete error implementation
// (dirpx.dev/silabs). HTTP adapters, gRPC adapters and the CLI target this
// surface; concrete error types implement it.
//
// This package must remain lightweight, so it only contains interfaces and
// very small view types.
package apis
