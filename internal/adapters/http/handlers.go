package web

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/yuin/goldmark"
	goldmarkHTML "github.com/yuin/goldmark/renderer/html"

	memberStore "clubdesk/internal/adapters/storage/member"
	"clubdesk/internal/application/orchestrators"
	"clubdesk/internal/application/projections"
	memberDomain "clubdesk/internal/domain/member"
	subscriptionDomain "clubdesk/internal/domain/subscription"
)

// mdRenderer is a goldmark instance configured for safe HTML output.
// Raw HTML in markdown input is escaped (WithUnsafe is NOT set), preventing XSS.
var mdRenderer = goldmark.New(
	goldmark.WithRendererOptions(
		goldmarkHTML.WithHardWraps(),
	),
)

const dateLayout = "2006-01-02"

// internalError logs the real error and returns a generic message to the client.
func internalError(w http.ResponseWriter, err error) {
	slog.Error("internal_error", "error", err.Error())
	http.Error(w, "internal server error", http.StatusInternalServerError)
}

// strictDecode decodes JSON from the request body, rejecting unknown fields.
func strictDecode(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeFieldErrors reports a failed form submission. The caller stays in its
// editing state and corrects the listed fields.
func writeFieldErrors(w http.ResponseWriter, errs map[string]string) {
	writeJSON(w, http.StatusUnprocessableEntity, map[string]any{"errors": errs})
}

// renderDescription converts a markdown description to safe HTML.
func renderDescription(md string) string {
	var buf bytes.Buffer
	if err := mdRenderer.Convert([]byte(md), &buf); err != nil {
		return md
	}
	return buf.String()
}

func registerRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/sports", handleListSports)
	mux.HandleFunc("POST /api/sports", handleCreateSport)
	mux.HandleFunc("GET /api/sports/{id}", handleGetSport)
	mux.HandleFunc("GET /api/sports/{id}/subscriptions", handleSportSubscriptions)

	mux.HandleFunc("GET /api/members", handleListMembers)
	mux.HandleFunc("POST /api/members", handleCreateMember)
	mux.HandleFunc("GET /api/members/{id}", handleGetMember)
	mux.HandleFunc("GET /api/members/{id}/subscriptions", handleMemberSubscriptions)
	mux.HandleFunc("GET /api/members/{id}/available-sports", handleMemberAvailableSports)

	mux.HandleFunc("GET /api/subscriptions", handleListSubscriptions)
	mux.HandleFunc("POST /api/subscriptions", handleCreateSubscription)
	mux.HandleFunc("GET /api/subscriptions/{id}", handleGetSubscription)

	mux.HandleFunc("GET /api/dashboard", handleDashboard)
}

// --- Response shapes ---

type sportJSON struct {
	ID                  string  `json:"id"`
	Name                string  `json:"name"`
	Description         string  `json:"description"`
	Instructor          string  `json:"instructor"`
	Schedule            string  `json:"schedule"`
	Capacity            int     `json:"capacity"`
	CurrentMembers      int     `json:"currentMembers"`
	Price               float64 `json:"price"`
	AvailabilityPercent float64 `json:"availabilityPercent"`
	AvailabilityLabel   string  `json:"availabilityLabel"`
	AvailabilityColor   string  `json:"availabilityColor"`
	SpotsLeft           int     `json:"spotsLeft"`
	DescriptionHTML     string  `json:"descriptionHtml,omitempty"`
}

func toSportJSON(v projections.SportView) sportJSON {
	return sportJSON{
		ID:                  v.ID,
		Name:                v.Name,
		Description:         v.Description,
		Instructor:          v.Instructor,
		Schedule:            v.Schedule,
		Capacity:            v.Capacity,
		CurrentMembers:      v.CurrentMembers,
		Price:               v.Price,
		AvailabilityPercent: v.AvailabilityPercent,
		AvailabilityLabel:   v.AvailabilityLabel,
		AvailabilityColor:   v.AvailabilityColor,
		SpotsLeft:           v.SpotsLeft,
	}
}

type memberJSON struct {
	ID              string   `json:"id"`
	FirstName       string   `json:"firstName"`
	LastName        string   `json:"lastName"`
	FullName        string   `json:"fullName"`
	Email           string   `json:"email"`
	Phone           string   `json:"phone"`
	JoinDate        string   `json:"joinDate"`
	MembershipType  string   `json:"membershipType"`
	Status          string   `json:"status"`
	Sports          []string `json:"sports"`
	StatusColor     string   `json:"statusColor"`
	MembershipColor string   `json:"membershipColor"`
}

func toMemberJSON(v projections.MemberView) memberJSON {
	sports := v.SportNames
	if sports == nil {
		sports = []string{}
	}
	return memberJSON{
		ID:              v.ID,
		FirstName:       v.FirstName,
		LastName:        v.LastName,
		FullName:        v.FullName,
		Email:           v.Email,
		Phone:           v.Phone,
		JoinDate:        v.JoinDate.Format(dateLayout),
		MembershipType:  v.MembershipType,
		Status:          v.Status,
		Sports:          sports,
		StatusColor:     v.StatusColor,
		MembershipColor: v.MembershipColor,
	}
}

type subscriptionJSON struct {
	ID            string  `json:"id"`
	MemberID      string  `json:"memberId"`
	MemberName    string  `json:"memberName"`
	SportID       string  `json:"sportId"`
	SportName     string  `json:"sportName"`
	StartDate     string  `json:"startDate"`
	EndDate       string  `json:"endDate"`
	Status        string  `json:"status"`
	StatusColor   string  `json:"statusColor"`
	Price         float64 `json:"price"`
	PaymentMethod string  `json:"paymentMethod"`
	LastPayment   string  `json:"lastPayment"`
}

func toSubscriptionJSON(v projections.SubscriptionView) subscriptionJSON {
	return subscriptionJSON{
		ID:            v.ID,
		MemberID:      v.MemberID,
		MemberName:    v.MemberName,
		SportID:       v.SportID,
		SportName:     v.SportName,
		StartDate:     v.StartDate.Format(dateLayout),
		EndDate:       v.EndDate.Format(dateLayout),
		Status:        v.Status,
		StatusColor:   v.StatusColor,
		Price:         v.Price,
		PaymentMethod: v.PaymentMethod,
		LastPayment:   v.LastPayment.Format(dateLayout),
	}
}

// subscriptionViews resolves names for raw subscription records.
func subscriptionViews(r *http.Request, subs []subscriptionDomain.Subscription) ([]subscriptionJSON, error) {
	ctx := r.Context()
	members, err := stores.MemberStore.List(ctx, memberStore.ListFilter{})
	if err != nil {
		return nil, err
	}
	memberNames := make(map[string]string, len(members))
	for _, m := range members {
		memberNames[m.ID] = m.FullName()
	}
	sports, err := stores.SportStore.List(ctx)
	if err != nil {
		return nil, err
	}
	sportNames := make(map[string]string, len(sports))
	for _, s := range sports {
		sportNames[s.ID] = s.Name
	}

	views := make([]subscriptionJSON, 0, len(subs))
	for _, sub := range subs {
		views = append(views, toSubscriptionJSON(projections.NewSubscriptionView(sub, memberNames, sportNames)))
	}
	return views, nil
}

// --- Sports ---

// handleListSports handles GET /api/sports
func handleListSports(w http.ResponseWriter, r *http.Request) {
	result, err := projections.QueryGetSportList(r.Context(), projections.GetSportListDeps{SportStore: stores.SportStore})
	if err != nil {
		internalError(w, err)
		return
	}
	views := make([]sportJSON, 0, len(result.Sports))
	for _, v := range result.Sports {
		views = append(views, toSportJSON(v))
	}
	writeJSON(w, http.StatusOK, views)
}

// handleGetSport handles GET /api/sports/{id}
func handleGetSport(w http.ResponseWriter, r *http.Request) {
	s, err := stores.SportStore.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		http.Error(w, "sport not found", http.StatusNotFound)
		return
	}
	view := toSportJSON(projections.NewSportView(s))
	view.DescriptionHTML = renderDescription(s.Description)
	writeJSON(w, http.StatusOK, view)
}

// handleSportSubscriptions handles GET /api/sports/{id}/subscriptions
func handleSportSubscriptions(w http.ResponseWriter, r *http.Request) {
	subs, err := stores.SubscriptionStore.ListBySportID(r.Context(), r.PathValue("id"))
	if err != nil {
		internalError(w, err)
		return
	}
	views, err := subscriptionViews(r, subs)
	if err != nil {
		internalError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, views)
}

// handleCreateSport handles POST /api/sports
func handleCreateSport(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Name        string `json:"name"`
		Description string `json:"description"`
		Instructor  string `json:"instructor"`
		Schedule    string `json:"schedule"`
		Price       string `json:"price"`
		Capacity    string `json:"capacity"`
	}
	if err := strictDecode(r, &body); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	input := orchestrators.AddSportInput{
		Name:        body.Name,
		Description: body.Description,
		Instructor:  body.Instructor,
		Schedule:    body.Schedule,
		Price:       body.Price,
		Capacity:    body.Capacity,
	}
	created, fieldErrs, err := orchestrators.ExecuteAddSport(r.Context(), input, orchestrators.AddSportDeps{SportStore: stores.SportStore})
	if err != nil {
		internalError(w, err)
		return
	}
	if len(fieldErrs) > 0 {
		writeFieldErrors(w, fieldErrs)
		return
	}
	writeJSON(w, http.StatusCreated, toSportJSON(projections.NewSportView(created)))
}

// --- Members ---

// handleListMembers handles GET /api/members?status=active
func handleListMembers(w http.ResponseWriter, r *http.Request) {
	query := projections.GetMemberListQuery{Status: r.URL.Query().Get("status")}
	result, err := projections.QueryGetMemberList(r.Context(), query, memberListDeps())
	if err != nil {
		internalError(w, err)
		return
	}
	views := make([]memberJSON, 0, len(result.Members))
	for _, v := range result.Members {
		views = append(views, toMemberJSON(v))
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"members": views,
		"stats": map[string]int{
			"total":    result.Stats.Total,
			"active":   result.Stats.Active,
			"inactive": result.Stats.Inactive,
			"pending":  result.Stats.Pending,
		},
	})
}

func memberListDeps() projections.GetMemberListDeps {
	return projections.GetMemberListDeps{
		MemberStore:       stores.MemberStore,
		SportStore:        stores.SportStore,
		SubscriptionStore: stores.SubscriptionStore,
	}
}

// handleGetMember handles GET /api/members/{id}
func handleGetMember(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if _, err := stores.MemberStore.GetByID(r.Context(), id); err != nil {
		http.Error(w, "member not found", http.StatusNotFound)
		return
	}
	// Reuse the list projection so sport names and colours come along.
	result, err := projections.QueryGetMemberList(r.Context(), projections.GetMemberListQuery{}, memberListDeps())
	if err != nil {
		internalError(w, err)
		return
	}
	for _, v := range result.Members {
		if v.ID == id {
			writeJSON(w, http.StatusOK, toMemberJSON(v))
			return
		}
	}
	http.Error(w, "member not found", http.StatusNotFound)
}

// handleMemberSubscriptions handles GET /api/members/{id}/subscriptions
func handleMemberSubscriptions(w http.ResponseWriter, r *http.Request) {
	subs, err := stores.SubscriptionStore.ListByMemberID(r.Context(), r.PathValue("id"))
	if err != nil {
		internalError(w, err)
		return
	}
	views, err := subscriptionViews(r, subs)
	if err != nil {
		internalError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, views)
}

// handleMemberAvailableSports handles GET /api/members/{id}/available-sports
func handleMemberAvailableSports(w http.ResponseWriter, r *http.Request) {
	query := projections.GetAvailableSportsQuery{MemberID: r.PathValue("id")}
	deps := projections.GetAvailableSportsDeps{
		SportStore:        stores.SportStore,
		SubscriptionStore: stores.SubscriptionStore,
	}
	result, err := projections.QueryGetAvailableSports(r.Context(), query, deps)
	if err != nil {
		internalError(w, err)
		return
	}
	views := make([]sportJSON, 0, len(result.Sports))
	for _, s := range result.Sports {
		views = append(views, toSportJSON(projections.NewSportView(s)))
	}
	writeJSON(w, http.StatusOK, views)
}

// handleCreateMember handles POST /api/members
func handleCreateMember(w http.ResponseWriter, r *http.Request) {
	var body struct {
		FirstName      string   `json:"firstName"`
		LastName       string   `json:"lastName"`
		Email          string   `json:"email"`
		Phone          string   `json:"phone"`
		MembershipType string   `json:"membershipType"`
		Sports         []string `json:"sports"`
	}
	if err := strictDecode(r, &body); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	input := orchestrators.AddMemberInput{
		FirstName:      body.FirstName,
		LastName:       body.LastName,
		Email:          body.Email,
		Phone:          body.Phone,
		MembershipType: body.MembershipType,
		SportIDs:       body.Sports,
	}
	deps := orchestrators.AddMemberDeps{
		MemberStore:       stores.MemberStore,
		SportStore:        stores.SportStore,
		SubscriptionStore: stores.SubscriptionStore,
	}
	result, fieldErrs, err := orchestrators.ExecuteAddMember(r.Context(), input, deps)
	if err != nil {
		internalError(w, err)
		return
	}
	if len(fieldErrs) > 0 {
		writeFieldErrors(w, fieldErrs)
		return
	}

	sportNames := result.SportNames
	if sportNames == nil {
		sportNames = []string{}
	}
	m := result.Member
	writeJSON(w, http.StatusCreated, memberJSON{
		ID:              m.ID,
		FirstName:       m.FirstName,
		LastName:        m.LastName,
		FullName:        m.FullName(),
		Email:           m.Email,
		Phone:           m.Phone,
		JoinDate:        m.JoinDate.Format(dateLayout),
		MembershipType:  m.MembershipType,
		Status:          m.Status,
		Sports:          sportNames,
		StatusColor:     memberDomain.StatusColor(m.Status),
		MembershipColor: memberDomain.MembershipColor(m.MembershipType),
	})
}

// --- Subscriptions ---

// handleListSubscriptions handles GET /api/subscriptions?status=active
func handleListSubscriptions(w http.ResponseWriter, r *http.Request) {
	query := projections.GetSubscriptionListQuery{Status: r.URL.Query().Get("status")}
	deps := projections.GetSubscriptionListDeps{
		SubscriptionStore: stores.SubscriptionStore,
		MemberStore:       stores.MemberStore,
		SportStore:        stores.SportStore,
	}
	result, err := projections.QueryGetSubscriptionList(r.Context(), query, deps)
	if err != nil {
		internalError(w, err)
		return
	}
	views := make([]subscriptionJSON, 0, len(result.Subscriptions))
	for _, v := range result.Subscriptions {
		views = append(views, toSubscriptionJSON(v))
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"subscriptions": views,
		"stats": map[string]any{
			"total":        result.Stats.Total,
			"active":       result.Stats.Active,
			"expired":      result.Stats.Expired,
			"cancelled":    result.Stats.Cancelled,
			"totalRevenue": result.Stats.TotalRevenue,
		},
	})
}

// handleGetSubscription handles GET /api/subscriptions/{id}
func handleGetSubscription(w http.ResponseWriter, r *http.Request) {
	sub, err := stores.SubscriptionStore.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		http.Error(w, "subscription not found", http.StatusNotFound)
		return
	}
	views, err := subscriptionViews(r, []subscriptionDomain.Subscription{sub})
	if err != nil {
		internalError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, views[0])
}

// handleCreateSubscription handles POST /api/subscriptions
func handleCreateSubscription(w http.ResponseWriter, r *http.Request) {
	var body struct {
		MemberID      string   `json:"memberId"`
		SportIDs      []string `json:"sportIds"`
		PaymentMethod string   `json:"paymentMethod"`
	}
	if err := strictDecode(r, &body); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	input := orchestrators.AddSubscriptionInput{
		MemberID:      body.MemberID,
		SportIDs:      body.SportIDs,
		PaymentMethod: body.PaymentMethod,
	}
	deps := orchestrators.AddSubscriptionDeps{
		MemberStore:       stores.MemberStore,
		SportStore:        stores.SportStore,
		SubscriptionStore: stores.SubscriptionStore,
	}
	created, fieldErrs, err := orchestrators.ExecuteAddSubscription(r.Context(), input, deps)
	if err != nil {
		internalError(w, err)
		return
	}
	if len(fieldErrs) > 0 {
		writeFieldErrors(w, fieldErrs)
		return
	}

	views, err := subscriptionViews(r, created)
	if err != nil {
		internalError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, views)
}

// --- Dashboard ---

// handleDashboard handles GET /api/dashboard
func handleDashboard(w http.ResponseWriter, r *http.Request) {
	deps := projections.GetDashboardDeps{
		SportStore:        stores.SportStore,
		MemberStore:       stores.MemberStore,
		SubscriptionStore: stores.SubscriptionStore,
	}
	result, err := projections.QueryGetDashboard(r.Context(), deps)
	if err != nil {
		internalError(w, err)
		return
	}
	recent := make([]subscriptionJSON, 0, len(result.RecentActivity))
	for _, v := range result.RecentActivity {
		recent = append(recent, toSubscriptionJSON(v))
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"totalSports":         result.TotalSports,
		"totalMembers":        result.TotalMembers,
		"totalSubscriptions":  result.TotalSubscriptions,
		"activeSubscriptions": result.ActiveSubscriptions,
		"recentActivity":      recent,
	})
}
