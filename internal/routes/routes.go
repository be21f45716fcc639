package routes

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/lmbotha/lea/internal/courseservice"
	"github.com/lmbotha/lea/internal/interfaces"
	"github.com/lmbotha/lea/internal/models"
	"github.com/lmbotha/lea/internal/models/dto"
	"github.com/lmbotha/lea/internal/userservice"

	structValidator "github.com/go-playground/validator/v10"
)

type Route struct {
	Metrics           interfaces.Metrics
	UserService       *userservice.UserService
	CourseService     *courseservice.CourseService
	TokenClient       interfaces.TokenClient
	DefaultRegion     string
	DefaultCurriculum string
	validator         *structValidator.Validate
}

// NewRoute creates a new Route instance.
func NewRoute(metrics interfaces.Metrics, userService *userservice.UserService,
	courseService *courseservice.CourseService, tokenClient interfaces.TokenClient,
	defaultRegion, defaultCurriculum string, validator *structValidator.Validate,
) *Route {

	return &Route{
		Metrics:           metrics,
		UserService:       userService,
		CourseService:     courseService,
		TokenClient:       tokenClient,
		DefaultRegion:     defaultRegion,
		DefaultCurriculum: defaultCurriculum,
		validator:         validator,
	}
}

// Home handles the root route.
func (r *Route) Home(w http.ResponseWriter, req *http.Request) {
	if req.URL.Path != HomeRouteAPI {
		http.NotFound(w, req)
		return
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(MsgHome))
}

// Register handles user registration requests.
func (r *Route) Register(w http.ResponseWriter, req *http.Request) {
	if r.Metrics != nil {
		r.Metrics.IncCounter(RegisterRequestsTotal)
	}

	registerRequest := &dto.RegisterRequestDTO{}
	if !r.decodeRequest(w, req, registerRequest, RegisterErrorsTotal) {
		return
	}

	var startTime time.Time
	if r.Metrics != nil {
		startTime = time.Now()
	}

	userID, err := r.UserService.RegisterUser(req.Context(), registerRequest.ExternalUserID,
		registerRequest.Name, registerRequest.Email, registerRequest.Password)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		r.errorResponse(w, err, ErrFailedToRegisterUser)
		if r.Metrics != nil {
			r.Metrics.IncCounter(RegisterErrorsTotal)
		}
		return
	}

	if r.Metrics != nil {
		r.Metrics.IncCounter(RegisterSuccessTotal)
		r.Metrics.ObserveHistogram(RegisterDurationSeconds, time.Since(startTime).Seconds())
	}

	response := &dto.RegisterResponseDTO{
		Message: MsgUserRegistered,
		UserID:  userID,
	}
	r.writeJSON(w, http.StatusCreated, response, RegisterErrorsTotal)
}

// Authenticate handles authentication requests. An unknown email and a wrong
// password produce identical responses so callers cannot enumerate users.
func (r *Route) Authenticate(w http.ResponseWriter, req *http.Request) {
	if r.Metrics != nil {
		r.Metrics.IncCounter(AuthRequestsTotal)
	}

	authRequest := &dto.AuthenticateRequestDTO{}
	if !r.decodeRequest(w, req, authRequest, AuthFailedTotal) {
		return
	}

	var startTime time.Time
	if r.Metrics != nil {
		startTime = time.Now()
	}

	authenticated, err := r.UserService.AuthenticateUser(req.Context(), authRequest.Email, authRequest.Password)
	if r.Metrics != nil {
		r.Metrics.ObserveHistogram(AuthDurationSeconds, time.Since(startTime).Seconds())
	}
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		r.errorResponse(w, err, ErrFailedToAuthenticate)
		if r.Metrics != nil {
			r.Metrics.IncCounter(AuthFailedTotal)
		}
		return
	}
	if !authenticated {
		if r.Metrics != nil {
			r.Metrics.IncCounter(AuthFailedTotal)
		}
		r.writeJSON(w, http.StatusUnauthorized,
			&dto.AuthenticateResponseDTO{Message: MsgInvalidCredentials}, AuthFailedTotal)
		return
	}

	if r.Metrics != nil {
		r.Metrics.IncCounter(AuthSuccessTotal)
	}
	r.writeJSON(w, http.StatusOK, &dto.AuthenticateResponseDTO{Message: MsgAuthSuccessful}, AuthFailedTotal)
}

// AddCourse handles course creation requests.
func (r *Route) AddCourse(w http.ResponseWriter, req *http.Request) {
	if r.Metrics != nil {
		r.Metrics.IncCounter(AddCourseRequestsTotal)
	}

	addRequest := &dto.AddCourseRequestDTO{}
	if !r.decodeRequest(w, req, addRequest, AddCourseErrorsTotal) {
		return
	}

	courseID, err := r.CourseService.AddCourse(req.Context(), addRequest.CourseName)
	if err != nil {
		if errors.Is(err, courseservice.ErrCourseExists) {
			if r.Metrics != nil {
				r.Metrics.IncCounter(AddCourseErrorsTotal)
			}
			r.writeJSON(w, http.StatusBadRequest,
				&dto.AddCourseResponseDTO{Message: MsgCourseExists}, AddCourseErrorsTotal)
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
		r.errorResponse(w, err, ErrFailedToAddCourse)
		if r.Metrics != nil {
			r.Metrics.IncCounter(AddCourseErrorsTotal)
		}
		return
	}

	response := &dto.AddCourseResponseDTO{
		Message:  MsgCourseAdded,
		CourseID: courseID,
	}
	r.writeJSON(w, http.StatusCreated, response, AddCourseErrorsTotal)
}

// AssignCourse handles user-course assignment requests. A course that does
// not exist yet is created as part of the assignment.
func (r *Route) AssignCourse(w http.ResponseWriter, req *http.Request) {
	if r.Metrics != nil {
		r.Metrics.IncCounter(AssignCourseRequestsTotal)
	}

	assignRequest := &dto.AssignCourseRequestDTO{}
	if !r.decodeRequest(w, req, assignRequest, AssignCourseErrorsTotal) {
		return
	}

	user, course, err := r.CourseService.AssignCourse(req.Context(), assignRequest.ExternalUserID, assignRequest.CourseName)
	if err != nil {
		if errors.Is(err, courseservice.ErrUserNotFound) {
			if r.Metrics != nil {
				r.Metrics.IncCounter(AssignCourseErrorsTotal)
			}
			r.writeJSON(w, http.StatusNotFound,
				&dto.AssignCourseResponseDTO{Message: MsgUserNotFound}, AssignCourseErrorsTotal)
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
		r.errorResponse(w, err, ErrFailedToAssignCourse)
		if r.Metrics != nil {
			r.Metrics.IncCounter(AssignCourseErrorsTotal)
		}
		return
	}

	response := &dto.AssignCourseResponseDTO{
		Message: fmt.Sprintf(MsgCourseAssignedFormat, course.CourseName, user.Name),
	}
	r.writeJSON(w, http.StatusOK, response, AssignCourseErrorsTotal)
}

// Courses handles course list requests.
func (r *Route) Courses(w http.ResponseWriter, req *http.Request) {
	if req.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		r.errorResponse(w, fmt.Errorf("method %s not allowed", req.Method), ErrMethodNotAllowed)
		return
	}

	if r.Metrics != nil {
		r.Metrics.IncCounter(CoursesRequestsTotal)
	}

	names, err := r.CourseService.ListCourses(req.Context())
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		r.errorResponse(w, err, ErrFailedToListCourses)
		return
	}

	response := &dto.CourseListResponseDTO{Courses: names}
	r.writeJSON(w, http.StatusOK, response, CoursesRequestsTotal)
}

// GetToken handles Siyavula token acquisition requests. Missing credentials
// fail fast with 400 before any outbound call; any provider error, whether
// remote-reported or a transport failure, surfaces as 401.
func (r *Route) GetToken(w http.ResponseWriter, req *http.Request) {
	if r.Metrics != nil {
		r.Metrics.IncCounter(TokenRequestsTotal)
	}

	tokenRequest := &dto.GetTokenRequestDTO{}
	if !r.decodeTokenRequest(w, req, tokenRequest, MsgCredentialsRequired, TokenErrorsTotal) {
		return
	}

	region := tokenRequest.Region
	if region == "" {
		region = r.DefaultRegion
	}
	curriculum := tokenRequest.Curriculum
	if curriculum == "" {
		curriculum = r.DefaultCurriculum
	}

	var startTime time.Time
	if r.Metrics != nil {
		startTime = time.Now()
	}

	result, err := r.TokenClient.RequestToken(req.Context(), tokenRequest.Username, tokenRequest.Password, region, curriculum)
	if r.Metrics != nil {
		r.Metrics.ObserveHistogram(TokenDurationSeconds, time.Since(startTime).Seconds())
	}
	r.writeTokenResult(w, result, err, TokenErrorsTotal)
}

// VerifyToken handles Siyavula token verification requests.
func (r *Route) VerifyToken(w http.ResponseWriter, req *http.Request) {
	if r.Metrics != nil {
		r.Metrics.IncCounter(VerifyRequestsTotal)
	}

	verifyRequest := &dto.VerifyTokenRequestDTO{}
	if !r.decodeTokenRequest(w, req, verifyRequest, MsgTokensRequired, VerifyErrorsTotal) {
		return
	}

	result, err := r.TokenClient.VerifyToken(req.Context(), verifyRequest.ClientToken, verifyRequest.UserToken)
	r.writeTokenResult(w, result, err, VerifyErrorsTotal)
}

// decodeRequest performs the shared POST plumbing: method check, Content-Type
// check, JSON decode and DTO validation. It writes the error response itself
// and returns false when the request should go no further.
func (r *Route) decodeRequest(w http.ResponseWriter, req *http.Request, target interface{}, errMetric string) bool {
	if req.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		r.errorResponse(w, fmt.Errorf("method %s not allowed", req.Method), ErrMethodNotAllowed)
		return false
	}

	if req.Header.Get(ContentType) != ContentTypeJson {
		w.WriteHeader(http.StatusBadRequest)
		r.errorResponse(w, fmt.Errorf("invalid content-type: %s", req.Header.Get(ContentType)), ErrInvalidContentType)
		if r.Metrics != nil {
			r.Metrics.IncCounter(errMetric)
		}
		return false
	}

	if err := json.NewDecoder(req.Body).Decode(target); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		r.errorResponse(w, err, ErrInvalidRequestBody)
		if r.Metrics != nil {
			r.Metrics.IncCounter(errMetric)
		}
		return false
	}

	if err := r.validator.Struct(target); err != nil {
		// Validation failed, handle the error
		errors := err.(structValidator.ValidationErrors)
		w.WriteHeader(http.StatusBadRequest)
		r.errorResponse(w, fmt.Errorf("invalid request data: %s", errors), ErrValidationFailed)
		if r.Metrics != nil {
			r.Metrics.IncCounter(errMetric)
		}
		return false
	}

	return true
}

// decodeTokenRequest is decodeRequest with the token endpoints' flat message
// contract: a missing required field answers with the endpoint's own message.
func (r *Route) decodeTokenRequest(w http.ResponseWriter, req *http.Request, target interface{}, missingMessage, errMetric string) bool {
	if req.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		r.errorResponse(w, fmt.Errorf("method %s not allowed", req.Method), ErrMethodNotAllowed)
		return false
	}

	if req.Header.Get(ContentType) != ContentTypeJson {
		w.WriteHeader(http.StatusBadRequest)
		r.errorResponse(w, fmt.Errorf("invalid content-type: %s", req.Header.Get(ContentType)), ErrInvalidContentType)
		if r.Metrics != nil {
			r.Metrics.IncCounter(errMetric)
		}
		return false
	}

	if err := json.NewDecoder(req.Body).Decode(target); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		r.errorResponse(w, err, ErrInvalidRequestBody)
		if r.Metrics != nil {
			r.Metrics.IncCounter(errMetric)
		}
		return false
	}

	if err := r.validator.Struct(target); err != nil {
		if r.Metrics != nil {
			r.Metrics.IncCounter(errMetric)
		}
		r.writeJSON(w, http.StatusBadRequest, map[string]string{"message": missingMessage}, errMetric)
		return false
	}

	return true
}

// writeTokenResult maps a token client outcome onto the response. One
// consistent mapping covers both token endpoints: provider success is 200;
// everything else, remote-reported or transport-level, is 401.
func (r *Route) writeTokenResult(w http.ResponseWriter, result *models.TokenResult, err error, errMetric string) {
	if err != nil {
		if r.Metrics != nil {
			r.Metrics.IncCounter(errMetric)
		}
		r.writeJSON(w, http.StatusUnauthorized, map[string]string{
			"status":  "error",
			"message": err.Error(),
		}, errMetric)
		return
	}

	if !result.Success() {
		if r.Metrics != nil {
			r.Metrics.IncCounter(errMetric)
		}
		r.writeJSON(w, http.StatusUnauthorized, result, errMetric)
		return
	}

	r.writeJSON(w, http.StatusOK, result, errMetric)
}

// writeJSON encodes the response with the given status code.
func (r *Route) writeJSON(w http.ResponseWriter, statusCode int, response interface{}, errMetric string) {
	w.Header().Set(ContentType, ContentTypeJson)
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		r.errorResponse(w, err, ErrFailedToEncodeResponse)
		if r.Metrics != nil {
			r.Metrics.IncCounter(errMetric)
		}
	}
}

func (r *Route) errorResponse(w http.ResponseWriter, err error, message string) {
	jsonResponse := map[string]string{
		"message": message,
	}
	if err != nil {
		jsonResponse["error"] = err.Error()
	}
	_ = json.NewEncoder(w).Encode(jsonResponse)
}
