package service

import (
	"context"
	"strings"
	"time"

	"github.com/alexanderramin/studysync/internal/contract"
	"github.com/alexanderramin/studysync/internal/domain"
	"github.com/alexanderramin/studysync/internal/repository"
	"github.com/google/uuid"
)

type timetableService struct {
	sessions repository.TimetableRepo
	observer UseCaseObserver
}

func NewTimetableService(sessions repository.TimetableRepo, observers ...UseCaseObserver) TimetableService {
	return &timetableService{sessions: sessions, observer: useCaseObserverOrNoop(observers)}
}

func (s *timetableService) Add(ctx context.Context, session *domain.TimetableSession) (err error) {
	defer observe(ctx, s.observer, "add-session", time.Now(), map[string]any{"day": session.Day.String()}, &err)

	session.Focus = strings.TrimSpace(session.Focus)
	if err := session.Validate(); err != nil {
		return err
	}
	if session.ID == "" {
		session.ID = uuid.New().String()
	}
	session.CreatedAt = time.Now().UTC()
	return s.sessions.Create(ctx, session)
}

func (s *timetableService) Remove(ctx context.Context, id string) error {
	return s.sessions.Delete(ctx, id)
}

func (s *timetableService) Week(ctx context.Context) ([]contract.DaySessions, error) {
	all, err := s.sessions.List(ctx)
	if err != nil {
		return nil, err
	}
	week := make([]contract.DaySessions, domain.DaysPerWeek)
	for i, d := range domain.Weekdays() {
		week[i].Day = d
	}
	for _, sess := range all {
		week[sess.Day].Sessions = append(week[sess.Day].Sessions, sess)
	}
	return week, nil
}
