package session

const (
	promptAction   = "Input an action (add, print, edit, delete, end):"
	promptPriority = "Input the task priority (C, H, N, L):"
	promptDate     = "Input the date (yyyy-mm-dd):"
	promptTime     = "Input the time (hh:mm):"
	promptTask     = "Input a new task (enter a blank line to end):"
	promptField    = "Input a field to edit (priority, date, time, task):"
	promptIndex    = "Input the task number (1-%d):"

	msgInvalidAction = "The input action is invalid"
	msgInvalidDate   = "The input date is invalid"
	msgInvalidTime   = "The input time is invalid"
	msgBlankTask     = "The task is blank"
	msgInvalidIndex  = "Invalid task number"
	msgInvalidField  = "Invalid field"
	msgChanged       = "The task is changed"
	msgDeleted       = "The task is deleted"
	msgExit          = "Tasklist exiting!"
)
