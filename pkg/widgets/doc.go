// Package widgets defines the widget capability contract (a bindable value
// with change notification, plus optional description/disabled surfaces), a
// headless built-in widget set, and the variant registry that maps attribute
// kinds to ordered widget candidates. The registry honours explicit variant
// requests with a structural compatibility check and otherwise scans the
// most recently registered candidate first, ending at a universal text
// fallback.
package widgets
