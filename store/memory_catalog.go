package store

import (
	"context"

	"stayrooted/data"
	"stayrooted/models"
)

// MemoryCatalog phục vụ catalog từ dữ liệu mẫu, không bao giờ thay đổi
type MemoryCatalog struct {
	hosts       []models.User
	experiences []models.Experience
	stays       []models.Stay
}

func NewMemoryCatalog() *MemoryCatalog {
	hosts := data.Hosts()
	return &MemoryCatalog{
		hosts:       hosts,
		experiences: AttachExperienceHosts(data.Experiences(), hosts),
		stays:       AttachStayHosts(data.Stays(), hosts),
	}
}

func (m *MemoryCatalog) Hosts(ctx context.Context) ([]models.User, error) {
	out := make([]models.User, len(m.hosts))
	copy(out, m.hosts)
	return out, nil
}

func (m *MemoryCatalog) Experiences(ctx context.Context) ([]models.Experience, error) {
	out := make([]models.Experience, len(m.experiences))
	copy(out, m.experiences)
	return out, nil
}

func (m *MemoryCatalog) Stays(ctx context.Context) ([]models.Stay, error) {
	out := make([]models.Stay, len(m.stays))
	copy(out, m.stays)
	return out, nil
}

func hostIndex(hosts []models.User) map[string]*models.User {
	idx := make(map[string]*models.User, len(hosts))
	for i := range hosts {
		h := hosts[i]
		idx[h.ID] = &h
	}
	return idx
}

// AttachExperienceHosts gắn host tương ứng vào từng experience
func AttachExperienceHosts(experiences []models.Experience, hosts []models.User) []models.Experience {
	idx := hostIndex(hosts)
	for i := range experiences {
		experiences[i].Host = idx[experiences[i].HostID]
	}
	return experiences
}

// AttachStayHosts gắn host tương ứng vào từng stay
func AttachStayHosts(stays []models.Stay, hosts []models.User) []models.Stay {
	idx := hostIndex(hosts)
	for i := range stays {
		stays[i].Host = idx[stays[i].HostID]
	}
	return stays
}
