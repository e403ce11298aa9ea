// Package citation holds the citation type registry and the in-progress
// citation instance edited by the form.
//
// Every citation type maps to a fixed Schema: an ordered field list whose
// keys are the substitution tokens of the schema's template. An Instance keeps
// exactly one value per schema field for its whole lifetime.
package citation
