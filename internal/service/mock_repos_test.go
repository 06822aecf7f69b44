package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"gorm.io/gorm"

	"eventura/internal/model"
	"eventura/internal/repository"
)

// ── 通用辅助 ──

func paginate[T any](items []T, offset, limit int) []T {
	if offset >= len(items) {
		return nil
	}
	end := offset + limit
	if end > len(items) {
		end = len(items)
	}
	return items[offset:end]
}

// ── Mock UserRepository ──

type mockUserRepo struct {
	users map[string]*model.User
	seq   int
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[string]*model.User)}
}

func (m *mockUserRepo) Create(_ context.Context, user *model.User) error {
	if user.UserID == "" {
		m.seq++
		user.UserID = fmt.Sprintf("user-%03d", m.seq)
	}
	for _, u := range m.users {
		if u.Email == user.Email || u.Username == user.Username {
			return gorm.ErrDuplicatedKey
		}
	}
	user.CreatedAt = time.Now()
	m.users[user.UserID] = user
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id string) (*model.User, error) {
	if u, ok := m.users[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) GetByUsername(_ context.Context, username string) (*model.User, error) {
	for _, u := range m.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) Update(_ context.Context, user *model.User) error {
	m.users[user.UserID] = user
	return nil
}

func (m *mockUserRepo) List(_ context.Context, offset, limit int) ([]model.User, int64, error) {
	var all []model.User
	for _, u := range m.users {
		all = append(all, *u)
	}
	return paginate(all, offset, limit), int64(len(all)), nil
}

// ── Mock EventRepository ──

type mockEventRepo struct {
	events  map[string]*model.Event
	deleted map[string]bool
	seq     int
}

func newMockEventRepo() *mockEventRepo {
	return &mockEventRepo{
		events:  make(map[string]*model.Event),
		deleted: make(map[string]bool),
	}
}

func (m *mockEventRepo) Create(_ context.Context, event *model.Event) error {
	if event.EventID == "" {
		m.seq++
		event.EventID = fmt.Sprintf("event-%03d", m.seq)
	}
	now := time.Now()
	event.CreatedAt = now
	event.UpdatedAt = now
	m.events[event.EventID] = event
	return nil
}

func (m *mockEventRepo) GetByID(_ context.Context, id string) (*model.Event, error) {
	if m.deleted[id] {
		return nil, gorm.ErrRecordNotFound
	}
	if e, ok := m.events[id]; ok {
		return e, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockEventRepo) Update(_ context.Context, event *model.Event) error {
	event.UpdatedAt = time.Now()
	m.events[event.EventID] = event
	return nil
}

func (m *mockEventRepo) SoftDelete(_ context.Context, id string) error {
	if e, ok := m.events[id]; ok {
		e.Status = model.EventStatusCancelled
	}
	m.deleted[id] = true
	return nil
}

func (m *mockEventRepo) matches(e *model.Event, f repository.EventFilter) bool {
	if m.deleted[e.EventID] {
		return false
	}
	if f.Status != "" && e.Status != f.Status {
		return false
	}
	if f.OrganizerID != "" && e.OrganizerID != f.OrganizerID {
		return false
	}
	if f.CategoryID != "" && e.CategoryID != f.CategoryID {
		return false
	}
	if f.Search != "" {
		s := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(e.Name), s) &&
			!strings.Contains(strings.ToLower(e.Description), s) {
			return false
		}
	}
	if f.DateFrom != nil && e.DateTime.Before(*f.DateFrom) {
		return false
	}
	if f.DateTo != nil && e.DateTime.After(*f.DateTo) {
		return false
	}
	return true
}

func (m *mockEventRepo) List(_ context.Context, f repository.EventFilter, offset, limit int) ([]model.Event, int64, error) {
	var all []model.Event
	for _, e := range m.events {
		if m.matches(e, f) {
			all = append(all, *e)
		}
	}
	if f.Status == model.EventStatusPublished {
		sort.Slice(all, func(i, j int) bool { return all[i].DateTime.After(all[j].DateTime) })
	} else {
		sort.Slice(all, func(i, j int) bool { return all[i].UpdatedAt.After(all[j].UpdatedAt) })
	}
	return paginate(all, offset, limit), int64(len(all)), nil
}

func (m *mockEventRepo) CountByStatus(_ context.Context, status, organizerID string) (int64, error) {
	var total int64
	for _, e := range m.events {
		if m.matches(e, repository.EventFilter{Status: status, OrganizerID: organizerID}) {
			total++
		}
	}
	return total, nil
}

func (m *mockEventRepo) Count(_ context.Context, organizerID string) (int64, error) {
	var total int64
	for _, e := range m.events {
		if m.matches(e, repository.EventFilter{OrganizerID: organizerID}) {
			total++
		}
	}
	return total, nil
}

func (m *mockEventRepo) ListRecent(_ context.Context, organizerID string, n int) ([]model.Event, error) {
	var all []model.Event
	for _, e := range m.events {
		if m.matches(e, repository.EventFilter{OrganizerID: organizerID}) {
			all = append(all, *e)
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt.After(all[j].CreatedAt) })
	if len(all) > n {
		all = all[:n]
	}
	return all, nil
}

func (m *mockEventRepo) CountByCategory(_ context.Context, categoryID, organizerID string) (int64, error) {
	var total int64
	for _, e := range m.events {
		if m.matches(e, repository.EventFilter{CategoryID: categoryID, OrganizerID: organizerID}) {
			total++
		}
	}
	return total, nil
}

// ── Mock CategoryRepository ──

type mockCategoryRepo struct {
	categories map[string]*model.EventCategory
	seq        int
}

func newMockCategoryRepo() *mockCategoryRepo {
	return &mockCategoryRepo{categories: make(map[string]*model.EventCategory)}
}

func (m *mockCategoryRepo) Create(_ context.Context, category *model.EventCategory) error {
	if category.CategoryID == "" {
		m.seq++
		category.CategoryID = fmt.Sprintf("cat-%03d", m.seq)
	}
	m.categories[category.CategoryID] = category
	return nil
}

func (m *mockCategoryRepo) GetByID(_ context.Context, id string) (*model.EventCategory, error) {
	if c, ok := m.categories[id]; ok {
		return c, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockCategoryRepo) GetByName(_ context.Context, name string) (*model.EventCategory, error) {
	for _, c := range m.categories {
		if c.Name == name {
			return c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockCategoryRepo) List(_ context.Context) ([]model.EventCategory, error) {
	var all []model.EventCategory
	for _, c := range m.categories {
		all = append(all, *c)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Name < all[j].Name })
	return all, nil
}

func (m *mockCategoryRepo) Update(_ context.Context, category *model.EventCategory) error {
	m.categories[category.CategoryID] = category
	return nil
}

func (m *mockCategoryRepo) Delete(_ context.Context, id string) error {
	delete(m.categories, id)
	return nil
}

// ── Mock TaskRepository ──

type mockTaskRepo struct {
	tasks map[string]*model.Task
	seq   int
}

func newMockTaskRepo() *mockTaskRepo {
	return &mockTaskRepo{tasks: make(map[string]*model.Task)}
}

func (m *mockTaskRepo) Create(_ context.Context, task *model.Task) error {
	if task.TaskID == "" {
		m.seq++
		task.TaskID = fmt.Sprintf("task-%03d", m.seq)
	}
	task.CreatedAt = time.Now()
	task.UpdatedAt = task.CreatedAt
	m.tasks[task.TaskID] = task
	return nil
}

func (m *mockTaskRepo) GetByID(_ context.Context, id string) (*model.Task, error) {
	if t, ok := m.tasks[id]; ok {
		return t, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockTaskRepo) Update(_ context.Context, task *model.Task) error {
	task.UpdatedAt = time.Now()
	m.tasks[task.TaskID] = task
	return nil
}

func (m *mockTaskRepo) Delete(_ context.Context, id string) error {
	delete(m.tasks, id)
	return nil
}

func (m *mockTaskRepo) List(_ context.Context, eventID, status string, offset, limit int) ([]model.Task, int64, error) {
	var all []model.Task
	for _, t := range m.tasks {
		if eventID != "" && t.EventID != eventID {
			continue
		}
		if status != "" && t.Status != status {
			continue
		}
		all = append(all, *t)
	}
	return paginate(all, offset, limit), int64(len(all)), nil
}

// ── Mock AssignmentRepository ──

type mockAssignmentRepo struct {
	assignments map[string]*model.TaskAssignment
	seq         int
}

func newMockAssignmentRepo() *mockAssignmentRepo {
	return &mockAssignmentRepo{assignments: make(map[string]*model.TaskAssignment)}
}

func (m *mockAssignmentRepo) Create(_ context.Context, assignment *model.TaskAssignment) error {
	for _, a := range m.assignments {
		if a.TaskID == assignment.TaskID && a.VolunteerID == assignment.VolunteerID {
			return gorm.ErrDuplicatedKey
		}
	}
	if assignment.AssignmentID == "" {
		m.seq++
		assignment.AssignmentID = fmt.Sprintf("assign-%03d", m.seq)
	}
	assignment.CreatedAt = time.Now()
	m.assignments[assignment.AssignmentID] = assignment
	return nil
}

func (m *mockAssignmentRepo) GetByID(_ context.Context, id string) (*model.TaskAssignment, error) {
	if a, ok := m.assignments[id]; ok {
		return a, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockAssignmentRepo) GetByTaskAndVolunteer(_ context.Context, taskID, volunteerID string) (*model.TaskAssignment, error) {
	for _, a := range m.assignments {
		if a.TaskID == taskID && a.VolunteerID == volunteerID {
			return a, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockAssignmentRepo) Update(_ context.Context, assignment *model.TaskAssignment) error {
	m.assignments[assignment.AssignmentID] = assignment
	return nil
}

func (m *mockAssignmentRepo) Delete(_ context.Context, id string) error {
	delete(m.assignments, id)
	return nil
}

func (m *mockAssignmentRepo) List(_ context.Context, offset, limit int) ([]model.TaskAssignment, int64, error) {
	return m.list("", "", offset, limit)
}

func (m *mockAssignmentRepo) ListByVolunteer(_ context.Context, volunteerID string, offset, limit int) ([]model.TaskAssignment, int64, error) {
	return m.list("volunteer", volunteerID, offset, limit)
}

func (m *mockAssignmentRepo) ListByTask(_ context.Context, taskID string, offset, limit int) ([]model.TaskAssignment, int64, error) {
	return m.list("task", taskID, offset, limit)
}

func (m *mockAssignmentRepo) list(field, value string, offset, limit int) ([]model.TaskAssignment, int64, error) {
	var all []model.TaskAssignment
	for _, a := range m.assignments {
		switch field {
		case "volunteer":
			if a.VolunteerID != value {
				continue
			}
		case "task":
			if a.TaskID != value {
				continue
			}
		}
		all = append(all, *a)
	}
	return paginate(all, offset, limit), int64(len(all)), nil
}

// ── Mock VolunteerRepository ──

// events 指向 mockEventRepo 的存储，用于组织者口径的统计
type mockVolunteerRepo struct {
	volunteers map[string]*model.EventVolunteer
	events     *mockEventRepo
}

func newMockVolunteerRepo(events *mockEventRepo) *mockVolunteerRepo {
	return &mockVolunteerRepo{
		volunteers: make(map[string]*model.EventVolunteer),
		events:     events,
	}
}

func volunteerKey(userID, eventID string) string { return userID + ":" + eventID }

func (m *mockVolunteerRepo) Create(_ context.Context, volunteer *model.EventVolunteer) error {
	key := volunteerKey(volunteer.UserID, volunteer.EventID)
	if _, ok := m.volunteers[key]; ok {
		return gorm.ErrDuplicatedKey
	}
	volunteer.CreatedAt = time.Now()
	m.volunteers[key] = volunteer
	return nil
}

func (m *mockVolunteerRepo) Get(_ context.Context, userID, eventID string) (*model.EventVolunteer, error) {
	if v, ok := m.volunteers[volunteerKey(userID, eventID)]; ok {
		return v, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockVolunteerRepo) Update(_ context.Context, volunteer *model.EventVolunteer) error {
	m.volunteers[volunteerKey(volunteer.UserID, volunteer.EventID)] = volunteer
	return nil
}

func (m *mockVolunteerRepo) Delete(_ context.Context, userID, eventID string) error {
	delete(m.volunteers, volunteerKey(userID, eventID))
	return nil
}

func (m *mockVolunteerRepo) ListByEvent(_ context.Context, eventID, status string, offset, limit int) ([]model.EventVolunteer, int64, error) {
	var all []model.EventVolunteer
	for _, v := range m.volunteers {
		if v.EventID != eventID {
			continue
		}
		if status != "" && v.Status != status {
			continue
		}
		all = append(all, *v)
	}
	return paginate(all, offset, limit), int64(len(all)), nil
}

func (m *mockVolunteerRepo) ListByUser(_ context.Context, userID string, offset, limit int) ([]model.EventVolunteer, int64, error) {
	var all []model.EventVolunteer
	for _, v := range m.volunteers {
		if v.UserID == userID {
			all = append(all, *v)
		}
	}
	return paginate(all, offset, limit), int64(len(all)), nil
}

func (m *mockVolunteerRepo) CountApproved(_ context.Context, organizerID string) (int64, error) {
	var total int64
	for _, v := range m.volunteers {
		if v.Status != model.VolunteerStatusApproved {
			continue
		}
		e, ok := m.events.events[v.EventID]
		if !ok || m.events.deleted[v.EventID] {
			continue
		}
		if organizerID != "" && e.OrganizerID != organizerID {
			continue
		}
		total++
	}
	return total, nil
}

func (m *mockVolunteerRepo) HasApproved(_ context.Context, userID string) (bool, error) {
	for _, v := range m.volunteers {
		if v.UserID == userID && v.Status == model.VolunteerStatusApproved {
			return true, nil
		}
	}
	return false, nil
}

// ── Mock AttendanceRepository ──

type mockAttendanceRepo struct {
	records map[string]*model.EventAttendance
	events  *mockEventRepo
	users   *mockUserRepo
}

func newMockAttendanceRepo(events *mockEventRepo, users *mockUserRepo) *mockAttendanceRepo {
	return &mockAttendanceRepo{
		records: make(map[string]*model.EventAttendance),
		events:  events,
		users:   users,
	}
}

func (m *mockAttendanceRepo) Create(_ context.Context, attendance *model.EventAttendance) error {
	key := volunteerKey(attendance.UserID, attendance.EventID)
	if _, ok := m.records[key]; ok {
		return gorm.ErrDuplicatedKey
	}
	attendance.CreatedAt = time.Now()
	m.records[key] = attendance
	return nil
}

func (m *mockAttendanceRepo) Get(_ context.Context, userID, eventID string) (*model.EventAttendance, error) {
	if a, ok := m.records[volunteerKey(userID, eventID)]; ok {
		if a.User == nil {
			a.User = m.users.users[userID]
		}
		return a, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockAttendanceRepo) Update(_ context.Context, attendance *model.EventAttendance) error {
	m.records[volunteerKey(attendance.UserID, attendance.EventID)] = attendance
	return nil
}

func (m *mockAttendanceRepo) Delete(_ context.Context, userID, eventID string) error {
	delete(m.records, volunteerKey(userID, eventID))
	return nil
}

func (m *mockAttendanceRepo) ListByEvent(_ context.Context, eventID, status, search string, offset, limit int) ([]model.EventAttendance, int64, error) {
	var all []model.EventAttendance
	for _, a := range m.records {
		if a.EventID != eventID {
			continue
		}
		if status != "" && a.Status != status {
			continue
		}
		if search != "" {
			u := m.users.users[a.UserID]
			if u == nil {
				continue
			}
			s := strings.ToLower(search)
			if !strings.Contains(strings.ToLower(u.FullName), s) &&
				!strings.Contains(strings.ToLower(u.Email), s) {
				continue
			}
		}
		record := *a
		record.User = m.users.users[a.UserID]
		all = append(all, record)
	}
	return paginate(all, offset, limit), int64(len(all)), nil
}

func (m *mockAttendanceRepo) CountByEventStatus(_ context.Context, eventID, status string) (int64, error) {
	var total int64
	for _, a := range m.records {
		if a.EventID != eventID {
			continue
		}
		if status != "" && a.Status != status {
			continue
		}
		total++
	}
	return total, nil
}

func (m *mockAttendanceRepo) Count(_ context.Context, organizerID string) (int64, error) {
	var total int64
	for _, a := range m.records {
		e, ok := m.events.events[a.EventID]
		if !ok || m.events.deleted[a.EventID] {
			continue
		}
		if organizerID != "" && e.OrganizerID != organizerID {
			continue
		}
		total++
	}
	return total, nil
}

// ── Mock InterestRepository ──

type mockInterestRepo struct {
	interests map[string]*model.Interest
}

func newMockInterestRepo() *mockInterestRepo {
	return &mockInterestRepo{interests: make(map[string]*model.Interest)}
}

func (m *mockInterestRepo) Create(_ context.Context, interest *model.Interest) error {
	key := volunteerKey(interest.UserID, interest.EventID)
	if _, ok := m.interests[key]; ok {
		return gorm.ErrDuplicatedKey
	}
	m.interests[key] = interest
	return nil
}

func (m *mockInterestRepo) Get(_ context.Context, userID, eventID string) (*model.Interest, error) {
	if i, ok := m.interests[volunteerKey(userID, eventID)]; ok {
		return i, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockInterestRepo) Delete(_ context.Context, userID, eventID string) error {
	delete(m.interests, volunteerKey(userID, eventID))
	return nil
}

func (m *mockInterestRepo) ListByUser(_ context.Context, userID string, offset, limit int) ([]model.Interest, int64, error) {
	var all []model.Interest
	for _, i := range m.interests {
		if i.UserID == userID {
			all = append(all, *i)
		}
	}
	return paginate(all, offset, limit), int64(len(all)), nil
}

func (m *mockInterestRepo) ListByEvent(_ context.Context, eventID string, offset, limit int) ([]model.Interest, int64, error) {
	var all []model.Interest
	for _, i := range m.interests {
		if i.EventID == eventID {
			all = append(all, *i)
		}
	}
	return paginate(all, offset, limit), int64(len(all)), nil
}

// ── Mock NotificationRepository ──

type mockNotificationRepo struct {
	notifications map[string]*model.Notification
	seq           int
}

func newMockNotificationRepo() *mockNotificationRepo {
	return &mockNotificationRepo{notifications: make(map[string]*model.Notification)}
}

func (m *mockNotificationRepo) Create(_ context.Context, notification *model.Notification) error {
	if notification.NotificationID == "" {
		m.seq++
		notification.NotificationID = fmt.Sprintf("notif-%03d", m.seq)
	}
	if notification.SentAt.IsZero() {
		notification.SentAt = time.Now()
	}
	m.notifications[notification.NotificationID] = notification
	return nil
}

func (m *mockNotificationRepo) GetByID(_ context.Context, id string) (*model.Notification, error) {
	if n, ok := m.notifications[id]; ok {
		return n, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockNotificationRepo) Update(_ context.Context, notification *model.Notification) error {
	m.notifications[notification.NotificationID] = notification
	return nil
}

func (m *mockNotificationRepo) ListByUser(_ context.Context, userID string, unreadOnly bool, offset, limit int) ([]model.Notification, int64, error) {
	var all []model.Notification
	for _, n := range m.notifications {
		if n.UserID != userID {
			continue
		}
		if unreadOnly && n.IsRead {
			continue
		}
		all = append(all, *n)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].SentAt.After(all[j].SentAt) })
	return paginate(all, offset, limit), int64(len(all)), nil
}

func (m *mockNotificationRepo) CountUnread(_ context.Context, userID string) (int64, error) {
	var total int64
	for _, n := range m.notifications {
		if n.UserID == userID && !n.IsRead {
			total++
		}
	}
	return total, nil
}

func (m *mockNotificationRepo) MarkAllRead(_ context.Context, userID string) error {
	for _, n := range m.notifications {
		if n.UserID == userID {
			n.IsRead = true
		}
	}
	return nil
}

// ── Mock CommentRepository ──

type mockCommentRepo struct {
	comments map[string]*model.CommentRating
	seq      int
}

func newMockCommentRepo() *mockCommentRepo {
	return &mockCommentRepo{comments: make(map[string]*model.CommentRating)}
}

func (m *mockCommentRepo) Create(_ context.Context, comment *model.CommentRating) error {
	if comment.CommentID == "" {
		m.seq++
		comment.CommentID = fmt.Sprintf("comment-%03d", m.seq)
	}
	comment.CreatedAt = time.Now()
	comment.UpdatedAt = comment.CreatedAt
	m.comments[comment.CommentID] = comment
	return nil
}

func (m *mockCommentRepo) GetByID(_ context.Context, id string) (*model.CommentRating, error) {
	if c, ok := m.comments[id]; ok {
		return c, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockCommentRepo) Update(_ context.Context, comment *model.CommentRating) error {
	comment.UpdatedAt = time.Now()
	m.comments[comment.CommentID] = comment
	return nil
}

func (m *mockCommentRepo) ListByEvent(_ context.Context, eventID string, offset, limit int) ([]model.CommentRating, int64, error) {
	var all []model.CommentRating
	for _, c := range m.comments {
		if c.EventID == eventID && c.Status == model.CommentStatusActive {
			all = append(all, *c)
		}
	}
	return paginate(all, offset, limit), int64(len(all)), nil
}

func (m *mockCommentRepo) ListByUser(_ context.Context, userID string, offset, limit int) ([]model.CommentRating, int64, error) {
	var all []model.CommentRating
	for _, c := range m.comments {
		if c.UserID == userID && c.Status == model.CommentStatusActive {
			all = append(all, *c)
		}
	}
	return paginate(all, offset, limit), int64(len(all)), nil
}

func (m *mockCommentRepo) StatsByEvent(_ context.Context, eventID string) (int64, float64, error) {
	var count int64
	var sum int
	for _, c := range m.comments {
		if c.EventID == eventID && c.Status == model.CommentStatusActive {
			count++
			sum += c.Rating
		}
	}
	if count == 0 {
		return 0, 0, nil
	}
	return count, float64(sum) / float64(count), nil
}

// ── 造数辅助 ──

func seedUser(r *testRepos, id, systemRole string) *model.User {
	u := &model.User{
		UserID:      id,
		Username:    id,
		Email:       id + "@example.com",
		FullName:    "User " + id,
		SystemRole:  systemRole,
		CurrentRole: model.CurrentRoleAttendee,
	}
	r.user.users[id] = u
	return u
}

func seedCategory(r *testRepos, id, name string) *model.EventCategory {
	c := &model.EventCategory{CategoryID: id, Name: name}
	r.category.categories[id] = c
	return c
}

func seedEvent(r *testRepos, id, organizerID, status string, accepting bool) *model.Event {
	e := &model.Event{
		EventID:             id,
		Name:                "Event " + id,
		DateTime:            time.Now().Add(24 * time.Hour),
		Status:              status,
		OrganizerID:         organizerID,
		CategoryID:          "cat-1",
		AcceptingVolunteers: accepting,
	}
	e.CreatedAt = time.Now()
	e.UpdatedAt = e.CreatedAt
	r.event.events[id] = e
	return e
}

func seedTask(r *testRepos, id, eventID string) *model.Task {
	t := &model.Task{TaskID: id, EventID: eventID, Name: "Task " + id, Status: model.TaskStatusPending}
	r.task.tasks[id] = t
	return t
}

func seedVolunteer(r *testRepos, userID, eventID, status string) *model.EventVolunteer {
	v := &model.EventVolunteer{UserID: userID, EventID: eventID, Status: status}
	if status == model.VolunteerStatusApproved {
		now := time.Now()
		v.ApprovedAt = &now
	}
	r.volunteer.volunteers[volunteerKey(userID, eventID)] = v
	return v
}

func seedAttendance(r *testRepos, userID, eventID, status string) *model.EventAttendance {
	a := &model.EventAttendance{UserID: userID, EventID: eventID, Status: status}
	if status == model.AttendanceStatusJoined {
		now := time.Now()
		a.CheckedInAt = &now
	}
	r.attendance.records[volunteerKey(userID, eventID)] = a
	return a
}

// ── 测试装配 ──

// testRepos 全量 Mock 仓库集合，各测试按需取用
type testRepos struct {
	repo       *repository.Repository
	user       *mockUserRepo
	event      *mockEventRepo
	category   *mockCategoryRepo
	task       *mockTaskRepo
	assignment *mockAssignmentRepo
	volunteer  *mockVolunteerRepo
	attendance *mockAttendanceRepo
	interest   *mockInterestRepo
	notif      *mockNotificationRepo
	comment    *mockCommentRepo
}

func newTestRepos() *testRepos {
	user := newMockUserRepo()
	event := newMockEventRepo()
	t := &testRepos{
		user:       user,
		event:      event,
		category:   newMockCategoryRepo(),
		task:       newMockTaskRepo(),
		assignment: newMockAssignmentRepo(),
		volunteer:  newMockVolunteerRepo(event),
		attendance: newMockAttendanceRepo(event, user),
		interest:   newMockInterestRepo(),
		notif:      newMockNotificationRepo(),
		comment:    newMockCommentRepo(),
	}
	t.repo = &repository.Repository{
		User:         t.user,
		Event:        t.event,
		Category:     t.category,
		Task:         t.task,
		Assignment:   t.assignment,
		Volunteer:    t.volunteer,
		Attendance:   t.attendance,
		Interest:     t.interest,
		Notification: t.notif,
		Comment:      t.comment,
	}
	return t
}
