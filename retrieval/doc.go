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

// Package retrieval ranks reference documents from the evidence corpus for a
// triage outcome.
//
// A Retriever builds a query from the winning condition key, the symptom text
// and the rule evidence, then scores every corpus document on:
//   - Condition membership
//   - Term overlap against keywords, title and abstract
//   - Document type, recency and red-flag signals
//
// Results are memoized in a bounded LRU cache keyed by the call inputs, with
// the evidence payload reduced to a canonical fingerprint.
package retrieval
