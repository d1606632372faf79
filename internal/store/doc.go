// Package store holds the ordered task list and reads and writes the task file.
//
// The task file is a JSON array of tasks in display order:
//
//	[
//	  {
//	    "priority": "H",
//	    "date": "2023-03-10",
//	    "time": "09:00",
//	    "taskLines": ["Buy milk"]
//	  }
//	]
//
// # Validation
//
// Loading validates the file in two layers:
//
// 1. JSON Schema validation against the embedded tasklist.schema.json
// (draft 2020-12): types, required fields, the priority enum, date and time
// shapes, non-empty taskLines of at most 44 characters each.
//
// 2. Task checks: every entry must build a valid task, which also rejects
// dates that do not exist in the calendar (2021-02-29) and values that are
// not zero-padded.
//
// Schema validation can be turned off; the task checks always run.
//
// # File Format
//
// Saving rewrites the whole file with 2-space indentation and a trailing
// newline. A missing file loads as an empty list.
package store
