package models

import "github.com/AniketJas/volunteer-signup/storage"

type StatsResponse struct {
	Total    int `json:"total"`
	Pending  int `json:"pending"`
	Approved int `json:"approved"`
	Active   int `json:"active"`
}

func TransformVolunteerStats(volunteers []*storage.Volunteer) StatsResponse {
	stats := StatsResponse{Total: len(volunteers)}
	for _, v := range volunteers {
		switch v.Status {
		case storage.StatusPending:
			stats.Pending++
		case storage.StatusApproved:
			stats.Approved++
		case storage.StatusActive:
			stats.Active++
		}
	}
	return stats
}
