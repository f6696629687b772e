package handler

// Plain-text bodies returned to the browser.
const (
	msgUsernameTaken      = "Username already exists. Please choose a different username."
	msgRegisterFailed     = "An error occurred while registering the user"
	msgInvalidCredentials = "Invalid credentials. Please try again."
	msgLoginFailed        = "An error occurred while logging in"
	msgUserNotFound       = "User not found."
	msgSaveTodoFailed     = "An error occurred while saving the todo"
	msgLoadTodosFailed    = "An error occurred while retrieving todos"
	msgUpdateTodoFailed   = "An error occurred while updating the todo"
	msgDeleteTodoFailed   = "An error occurred while deleting the todo"
	msgAdminListFailed    = "An error occurred while retrieving users and their todos"
	msgDeleteUserFailed   = "An error occurred while deleting the user"
)

// --- Form payloads ---

// Credentials and todo fields are plain strings; empty values are accepted.
type credentialsForm struct {
	Username string `form:"username" json:"username"`
	Password string `form:"password" json:"password"`
}

type todoForm struct {
	Task        string `form:"task"        json:"task"`
	Description string `form:"description" json:"description"`
}

// completedForm accepts a checkbox ("on", absent) or a boolean literal.
type completedForm struct {
	Completed string `form:"completed" json:"completed" validate:"omitempty,boolean|oneof=on off"`
}
