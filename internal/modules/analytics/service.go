package analytics

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

type Service interface {
	// RecordVisit stores a visit. Geo enrichment is best-effort and never
	// fails the call.
	RecordVisit(ctx context.Context, visit Visit) error
	ListVisits(ctx context.Context) ([]VisitorLog, error)
}

// Visit is the client-reported part of a page view.
type Visit struct {
	Hostname        string  `json:"hostname"`
	Origin          string  `json:"origin"`
	Referrer        string  `json:"referrer"`
	IP              string  `json:"-"`
	UserAgent       string  `json:"-"`
	Page            string  `json:"page"`
	Latitude        float64 `json:"latitude"`
	Longitude       float64 `json:"longitude"`
	Accuracy        float64 `json:"accuracy"`
	GrantedLocation bool    `json:"grantedLocation"`
}

type service struct {
	repo Repository
	geo  GeoLookup
}

func NewService(repo Repository, geo GeoLookup) Service {
	return &service{repo: repo, geo: geo}
}

func (s *service) RecordVisit(ctx context.Context, visit Visit) error {
	browser, device, os := classifyUserAgent(visit.UserAgent)
	log := VisitorLog{
		ID:              uuid.New().String(),
		Hostname:        visit.Hostname,
		Origin:          visit.Origin,
		Referrer:        visit.Referrer,
		IP:              visit.IP,
		UserAgent:       visit.UserAgent,
		Browser:         browser,
		Device:          device,
		OS:              os,
		Page:            visit.Page,
		Latitude:        visit.Latitude,
		Longitude:       visit.Longitude,
		Accuracy:        visit.Accuracy,
		GrantedLocation: visit.GrantedLocation,
		Timestamp:       time.Now().UTC().Format(time.RFC3339),
	}
	if s.geo != nil && visit.IP != "" {
		if info, err := s.geo.Lookup(ctx, visit.IP); err == nil {
			log.Country = info.Country
			log.Region = info.Region
			log.City = info.City
			log.Postal = info.Postal
			log.Timezone = info.Timezone
		} else {
			slog.Warn("geo lookup failed", "ip", visit.IP, "error", err)
		}
	}
	return s.repo.Insert(ctx, log)
}

func (s *service) ListVisits(ctx context.Context) ([]VisitorLog, error) {
	return s.repo.List(ctx)
}
