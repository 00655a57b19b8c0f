// Package progress defines the player progress aggregate and its in-memory
// store.
//
// Exactly one PlayerProgress is current at a time. It is created by
// deserializing durable storage or from defaults, replaced wholesale only at
// load time, and mutated in place by the components that own its fields.
//
// Collaborators:
//   - Reader: receives the aggregate after it becomes current
//   - Writer: pulls runtime state into the aggregate before a save
//
// Change notifications on LootData and PurchaseData are subscription lists
// owned by those sections; they are never serialized.
package progress
