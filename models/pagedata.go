package models

type AuthPageData struct {
	Error   string
	Success string
}

type ResetPageData struct {
	Token   string
	Error   string
	Success string
}

type DashboardData struct {
	Username  string
	Contacts  []Contact
	CSRFtoken string
	Error     string
	Success   string
}
