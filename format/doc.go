// Package format classifies document file extensions.
//
// Two lookups coexist on purpose and fail differently. Classify decides
// conversion eligibility and is strict: an extension outside the table is an
// error naming that extension. SaveTarget supplies MIME type and description
// for save dialogs and is lenient: unknown extensions degrade to a generic
// binary type instead of failing. The table itself is data, not behavior;
// supporting a new extension is an edit to formats.yaml.
package format
