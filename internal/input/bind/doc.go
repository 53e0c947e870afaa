// Package bind implements the binding mini-grammar that turns lines such
// as "super+shift+q, killclient" into typed key and button bindings.
//
// A binding line is a comma-separated list of fields. The first field is a
// "+"-joined modifier chain whose final token is the trigger (a key symbol
// name for key bindings, a button name for button bindings). Button
// bindings carry an extra click-zone field. The action field selects an
// entry in the action table, which declares the expected argument kind and
// the valid numeric range for the optional final field.
//
// Bindings that fail to parse are reported through the returned error and
// excluded by the caller; one bad line never aborts a batch.
package bind
