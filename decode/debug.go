// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package decode

import (
	"os"
	"runtime"
	"strings"
)

// debugMode is the status of the PRISM_DEBUG environment variable at startup.
// When set, decode errors carry a stack trace of the decoder, which is useful
// for tracking down disagreements between the schema and a buffer.
var debugMode = func() bool {
	switch strings.ToLower(os.Getenv("PRISM_DEBUG")) {
	case "", "0", "off", "false":
		return false
	default:
		return true
	}
}()

// captureTrace returns the stack of the caller, minus skip frames.
func captureTrace(skip int) []runtime.Frame {
	if !debugMode {
		return nil
	}

	var pc [64]uintptr
	frames := runtime.CallersFrames(pc[:runtime.Callers(skip+2, pc[:])])
	var trace []runtime.Frame
	for {
		frame, more := frames.Next()
		if !strings.HasPrefix(frame.Function, "runtime.") {
			trace = append(trace, frame)
		}
		if !more {
			return trace
		}
	}
}
