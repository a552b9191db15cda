// This file is part of paren - https://github.com/PiJoules/paren
//
// Copyright 2024 The paren Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package interp

// threadHandle tracks one spawned thread. There is no cancellation and
// no error propagation across the boundary: a thread runs to completion
// and join is the only way to observe that it has.
type threadHandle struct {
	done chan struct{}
}

func newThreadHandle() *threadHandle {
	return &threadHandle{done: make(chan struct{})}
}

// (join T) blocks until the thread behind the handle has finished.
// Always succeeds on a live handle; anything else yields nil
// immediately.
func builtinJoin(in *Interp, args []*Value, env *Env) *Value {
	if len(args) > 0 && args[0].kind == KindThread && args[0].th != nil {
		<-args[0].th.done
	}
	return NewNil()
}
