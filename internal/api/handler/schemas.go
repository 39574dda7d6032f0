package handler

import (
	"strings"

	"github.com/dashgrid/dashgrid-api/internal/core/domain"
)

// statusResponse is the envelope for business errors. It is sent with HTTP
// 200 except where the error pipeline sets the real status.
type statusResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

type successResponse struct {
	Success bool `json:"success"`
}

type okResponse struct {
	OK      bool   `json:"ok"`
	Message string `json:"message"`
}

// --- Accounts ---

type registerRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=5"`
	Username string `json:"username" validate:"required"`
}

func (r *registerRequest) normalize() {
	r.Email = domain.NormalizeEmail(r.Email)
	r.Username = domain.NormalizeUsername(r.Username)
}

type registerResponse struct {
	Success bool   `json:"success"`
	ID      string `json:"id"`
}

type authenticateRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required,min=5"`
}

func (r *authenticateRequest) normalize() {
	r.Username = domain.NormalizeUsername(r.Username)
}

type sessionUser struct {
	Username string `json:"username"`
	ID       string `json:"id"`
	Email    string `json:"email"`
}

type authenticateResponse struct {
	User  sessionUser `json:"user"`
	Token string      `json:"token"`
}

type resetRequest struct {
	Username string `json:"username" validate:"required"`
}

func (r *resetRequest) normalize() {
	r.Username = domain.NormalizeUsername(r.Username)
}

type changePasswordRequest struct {
	Password string `json:"password" validate:"required,min=5"`
}

// --- Dashboards ---

type dashboardSummary struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Views int64  `json:"views"`
}

type listDashboardsResponse struct {
	Success    bool               `json:"success"`
	Dashboards []dashboardSummary `json:"dashboards"`
}

type createDashboardRequest struct {
	Name string `json:"name" validate:"required"`
}

func (r *createDashboardRequest) normalize() {
	r.Name = strings.TrimSpace(r.Name)
}

type idRequest struct {
	ID string `json:"id" validate:"required"`
}

type dashboardDetail struct {
	ID     string         `json:"id"`
	Name   string         `json:"name"`
	Layout []any          `json:"layout"`
	Items  map[string]any `json:"items"`
	NextID int            `json:"nextId"`
}

type getDashboardResponse struct {
	Success   bool            `json:"success"`
	Dashboard dashboardDetail `json:"dashboard"`
	Sources   []string        `json:"sources"`
}

type saveDashboardRequest struct {
	ID     string         `json:"id"     validate:"required"`
	Layout []any          `json:"layout"`
	Items  map[string]any `json:"items"`
	NextID int            `json:"nextId"`
}

type cloneDashboardRequest struct {
	DashboardID string `json:"dashboardId" validate:"required"`
	Name        string `json:"name"        validate:"required"`
}

func (r *cloneDashboardRequest) normalize() {
	r.Name = strings.TrimSpace(r.Name)
}

// requestUser is the optional identity a public caller sends in the body.
type requestUser struct {
	ID string `json:"id"`
}

type checkPasswordNeededRequest struct {
	User        *requestUser `json:"user"`
	DashboardID string       `json:"dashboardId" validate:"required"`
}

type dashboardView struct {
	Name   string         `json:"name"`
	Layout []any          `json:"layout"`
	Items  map[string]any `json:"items"`
}

type checkPasswordNeededResponse struct {
	Success        bool           `json:"success"`
	Owner          string         `json:"owner"`
	Shared         bool           `json:"shared"`
	HasPassword    *bool          `json:"hasPassword,omitempty"`
	PasswordNeeded *bool          `json:"passwordNeeded,omitempty"`
	Dashboard      *dashboardView `json:"dashboard,omitempty"`
}

type checkPasswordRequest struct {
	DashboardID string `json:"dashboardId" validate:"required"`
	Password    string `json:"password"`
}

type checkPasswordResponse struct {
	Success         bool           `json:"success"`
	CorrectPassword bool           `json:"correctPassword"`
	Owner           string         `json:"owner,omitempty"`
	Dashboard       *dashboardView `json:"dashboard,omitempty"`
}

type shareDashboardRequest struct {
	DashboardID string `json:"dashboardId" validate:"required"`
}

type shareDashboardResponse struct {
	Success bool `json:"success"`
	Shared  bool `json:"shared"`
}

// changeDashboardPasswordRequest accepts null or "" to remove the password.
type changeDashboardPasswordRequest struct {
	DashboardID string  `json:"dashboardId" validate:"required"`
	Password    *string `json:"password"`
}

// --- Sources ---

type sourceFields struct {
	Name     string `json:"name"     validate:"required"`
	Type     string `json:"type"`
	URL      string `json:"url"`
	Login    string `json:"login"`
	Passcode string `json:"passcode"`
	VHost    string `json:"vhost"`
}

type createSourceRequest struct {
	sourceFields
}

func (r *createSourceRequest) normalize() {
	r.Name = strings.TrimSpace(r.Name)
}

type changeSourceRequest struct {
	ID string `json:"id" validate:"required"`
	sourceFields
}

func (r *changeSourceRequest) normalize() {
	r.Name = strings.TrimSpace(r.Name)
}

type sourceItem struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Type     string `json:"type"`
	URL      string `json:"url"`
	Login    string `json:"login"`
	Passcode string `json:"passcode"`
	VHost    string `json:"vhost"`
	Active   bool   `json:"active"`
}

type listSourcesResponse struct {
	Success bool         `json:"success"`
	Sources []sourceItem `json:"sources"`
}

type getSourceRequest struct {
	Name  string       `json:"name"  validate:"required"`
	Owner string       `json:"owner" validate:"required"`
	User  *requestUser `json:"user"`
}

type sourceConnection struct {
	Type     string `json:"type"`
	URL      string `json:"url"`
	Login    string `json:"login"`
	Passcode string `json:"passcode"`
	VHost    string `json:"vhost"`
}

type getSourceResponse struct {
	Success bool             `json:"success"`
	Source  sourceConnection `json:"source"`
}

type checkSourcesRequest struct {
	Sources []string `json:"sources"`
}

type checkSourcesResponse struct {
	Success    bool     `json:"success"`
	NewSources []string `json:"newSources"`
}

// --- General ---

type statisticsResponse struct {
	Success    bool  `json:"success"`
	Users      int64 `json:"users"`
	Dashboards int64 `json:"dashboards"`
	Views      int64 `json:"views"`
	Sources    int64 `json:"sources"`
}

type bannerResponse struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}
