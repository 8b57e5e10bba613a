// Package selection picks a base compression preset for a target platform
// and layers content-type and signal-driven customizations on top.
//
// The selector never invents encoding parameters: it starts from the
// catalog's first preset for the platform, may swap to a better-suited
// sibling (a 60fps preset for gaming footage), and records every override in
// the returned customization map. Customizations that would violate the
// catalog's own preset invariants are clamped, not applied verbatim.
package selection
