package routes

var (
	RegisterDurationSecondsBuckets     = []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10}
	AuthenticateDurationSecondsBuckets = []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10}
	TokenDurationSecondsBuckets        = []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10}
)

const (
	// API route constants
	HomeRouteAPI         = "/"
	MetricsRouteAPI      = "/metrics"
	RegisterRouteAPI     = "/register"
	AuthenticateRouteAPI = "/authenticate"
	AddCourseRouteAPI    = "/add_course"
	AssignCourseRouteAPI = "/assign_course"
	CoursesRouteAPI      = "/courses"
	GetTokenRouteAPI     = "/siyavula-get-token"
	VerifyTokenRouteAPI  = "/siyavula-verify"

	// Content-Type constants
	ContentType     = "Content-Type"
	ContentTypeJson = "application/json"

	// message constants
	MsgHome                 = "Lea learning-management service"
	MsgUserRegistered       = "User registered successfully."
	MsgAuthSuccessful       = "Authentication successful."
	MsgInvalidCredentials   = "Invalid credentials."
	MsgCourseAdded          = "Course added successfully"
	MsgCourseExists         = "Course already exists"
	MsgUserNotFound         = "User not found."
	MsgCourseAssignedFormat = "Course '%s' assigned to '%s'."
	MsgTokensRequired       = "Client and User tokens are required"
	MsgCredentialsRequired  = "Username and password are required"

	// Error messages
	ErrMethodNotAllowed       = "Method not allowed"
	ErrInvalidContentType     = "Request Content-Type must be application/json"
	ErrInvalidRequestBody     = "Invalid request body"
	ErrValidationFailed       = "Request data validation failed"
	ErrFailedToRegisterUser   = "Failed to register user"
	ErrFailedToAuthenticate   = "Failed to authenticate user"
	ErrFailedToAddCourse      = "Failed to add course"
	ErrFailedToAssignCourse   = "Failed to assign course"
	ErrFailedToListCourses    = "Failed to list courses"
	ErrFailedToEncodeResponse = "Failed to encode response"

	// metrics constants
	RegisterRequestsTotal         = "register_requests_total"
	RegisterRequestsTotalHelp     = "Total number of register requests received"
	RegisterSuccessTotal          = "register_success_total"
	RegisterSuccessTotalHelp      = "Total number of successful register requests"
	RegisterErrorsTotal           = "register_errors_total"
	RegisterErrorsTotalHelp       = "Total number of errors during register requests"
	RegisterDurationSeconds       = "register_duration_seconds"
	RegisterDurationSecondsHelp   = "Duration of register requests in seconds"
	AuthRequestsTotal             = "authenticate_requests_total"
	AuthRequestsTotalHelp         = "Total number of authenticate requests received"
	AuthSuccessTotal              = "authenticate_success_total"
	AuthSuccessTotalHelp          = "Total number of successful authenticate requests"
	AuthFailedTotal               = "authenticate_failed_total"
	AuthFailedTotalHelp           = "Total number of failed authenticate requests"
	AuthDurationSeconds           = "authenticate_duration_seconds"
	AuthDurationSecondsHelp       = "Duration of authenticate requests in seconds"
	AddCourseRequestsTotal        = "add_course_requests_total"
	AddCourseRequestsTotalHelp    = "Total number of add course requests received"
	AddCourseErrorsTotal          = "add_course_errors_total"
	AddCourseErrorsTotalHelp      = "Total number of errors during add course requests"
	AssignCourseRequestsTotal     = "assign_course_requests_total"
	AssignCourseRequestsTotalHelp = "Total number of assign course requests received"
	AssignCourseErrorsTotal       = "assign_course_errors_total"
	AssignCourseErrorsTotalHelp   = "Total number of errors during assign course requests"
	CoursesRequestsTotal          = "courses_requests_total"
	CoursesRequestsTotalHelp      = "Total number of course list requests received"
	TokenRequestsTotal            = "token_requests_total"
	TokenRequestsTotalHelp        = "Total number of Siyavula token requests received"
	TokenErrorsTotal              = "token_errors_total"
	TokenErrorsTotalHelp          = "Total number of failed Siyavula token requests"
	TokenDurationSeconds          = "token_duration_seconds"
	TokenDurationSecondsHelp      = "Duration of Siyavula token requests in seconds"
	VerifyRequestsTotal           = "verify_requests_total"
	VerifyRequestsTotalHelp       = "Total number of Siyavula verify requests received"
	VerifyErrorsTotal             = "verify_errors_total"
	VerifyErrorsTotalHelp         = "Total number of failed Siyavula verify requests"
)
