// Package dom provides the in-memory host DOM that rendered trees mount
// into: element and text nodes, attributes, and an event target model with
// standard capture/target/bubble dispatch.
//
// Dispatch is fully synchronous. Listeners run inline on the caller's
// stack, so any state they change is visible as soon as DispatchEvent
// returns. The package owns no shared mutable state and starts no
// goroutines.
package dom
