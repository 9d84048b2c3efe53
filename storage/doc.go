// Copyright 2025 Poiesic Systems
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

// Package storage provides the storage abstraction layer for careguide.
//
// The triage core never touches storage: rules and documents are loaded once
// at process start into an immutable catalog. This package lets a deployment
// keep that configuration in a database instead of compiling it in.
//
// # Architecture
//
// The storage layer follows the Repository pattern:
//
//   - RuleRepository: Operations for triage rules
//   - DocumentRepository: Operations for evidence documents, with a
//     condition-key index
//
// Both repositories preserve insertion order, since rule order and corpus
// order are the final tie-breakers of ranking.
//
// # Usage
//
// Use in tests with in-memory storage:
//
//	rules, docs, backend, err := badger.NewMemoryRepositories()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer backend.Close()
//
// # Thread Safety
//
// All repository implementations must be thread-safe and support
// concurrent access from multiple goroutines.
package storage
