// Package binding keeps models and widgets synchronized. Link is the
// two-way mode the view factory installs per leaf widget; Observe is the
// simpler one-way facility that invokes a callback with a full named
// snapshot on every model change. All delivery is synchronous on the
// caller's single-threaded event context.
package binding
