// Package scheduler runs the periodic reminder evaluation.
package scheduler

import (
	"log"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/example/vocablearner/internal/session"
	"github.com/example/vocablearner/pkg/models"
)

// Notifier delivers a reminder message for a word
type Notifier interface {
	Deliver(entry models.WordEntry) error
}

// Scheduler periodically evaluates the notification gate and delivers a
// reminder when it fires
type Scheduler struct {
	scheduler  *gocron.Scheduler
	controller *session.Controller
	notifier   Notifier
}

// New creates a new scheduler instance
func New(controller *session.Controller, notifier Notifier) *Scheduler {
	return &Scheduler{
		scheduler:  gocron.NewScheduler(time.Local),
		controller: controller,
		notifier:   notifier,
	}
}

// Start begins running the reminder check in the background
func (s *Scheduler) Start() {
	s.scheduler.Every(1).Minute().Do(s.checkAndNotify)
	s.scheduler.StartAsync()
}

// Stop terminates all scheduled tasks
func (s *Scheduler) Stop() {
	s.scheduler.Stop()
}

// checkAndNotify fires at most one reminder per evaluation. The notified
// timestamp is committed only after a successful delivery.
func (s *Scheduler) checkAndNotify() {
	if !s.controller.ShouldNotify() {
		return
	}

	entry, err := s.controller.NextWord()
	if err != nil || entry == nil {
		return
	}

	if err := s.notifier.Deliver(*entry); err != nil {
		log.Printf("Error delivering reminder for %q: %v", entry.Word, err)
		return
	}
	s.controller.OnNotified()
}
