// Package document defines the JSON documents exchanged by the pivotgrid
// CLI and HTTP API.
//
// Each operation has a request document and, where the result is not a
// core type, a response document:
//
//	reconcile  ReconcileRequest  -> pivot.Setting
//	check      CheckRequest      -> CheckResponse
//	layout     LayoutRequest     -> LayoutResponse
//
// Requests carry only plain data. Collaborators that are interfaces in the
// core packages, such as [pivot.Database], are reduced to the one flag the
// pivot table inspects and rebuilt by [Query.Pivot].
//
// [ReadFile] and [WriteFile] load and store any document as indented JSON.
package document
