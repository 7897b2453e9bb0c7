package services

import (
	"time"

	"luffi/internal/repos"
)

// NewsletterService records subscriptions after a simulated network delay.
// The submitting form is disabled client-side while the call is in flight.
type NewsletterService struct {
	Subs  *repos.NewsletterRepo
	Delay time.Duration
}

func NewNewsletterService(subs *repos.NewsletterRepo, delay time.Duration) *NewsletterService {
	return &NewsletterService{Subs: subs, Delay: delay}
}

func (s *NewsletterService) Subscribe(email string) error {
	if s.Delay > 0 {
		time.Sleep(s.Delay)
	}
	return s.Subs.Subscribe(email)
}
