// Package resolve turns a merged manifest document into concrete
// installation plans.
//
// A Session owns one resolution: the merged document, the ordered pack
// selection, and the execution context. Entries are gathered scope by
// scope, core first and then each selected pack in order, filtered by
// tag predicates, and projected into per-consumer output shapes. All of
// it is pure, in-memory work; re-initializing the environment means
// constructing a new Session.
package resolve
