// Package task defines the task record and the rules that turn raw input into one.
//
// A task carries a priority, a due date, a due time and its text split into
// display lines:
//
//	{
//	  "priority": "H",
//	  "date": "2023-03-10",
//	  "time": "09:00",
//	  "taskLines": ["Buy milk"]
//	}
//
// # Priorities
//
//   - "C": Critical
//   - "H": High
//   - "N": Normal
//   - "L": Low
//
// # Normalization
//
// Dates are accepted as YYYY-M-D and stored as YYYY-MM-DD. Days above 28 are
// checked against the real calendar; smaller days are not. Times are accepted
// as H:M and stored as HH:MM.
//
// Task text is split into lines of at most LineWidth runes. Splitting never
// drops or adds characters.
//
// # Urgency
//
// Urgency (overdue, today, upcoming) is derived from the due date and the
// current UTC calendar date whenever it is needed. It is never stored.
package task
