// Package uischema loads form documents (JSON or YAML) that declare fields,
// their kinds, presentation text and validation rules, and builds model.Model
// instances from them. Labels, placeholders and options coming from external
// documents are stripped of markup before they reach a model.
package uischema
