package api

import (
	"context"
	"sync"

	"github.com/Hamidziya/crm-edfront/internal/models"
)

// ContactUnavailable stands in for an assignee whose lookup failed.
const ContactUnavailable = "N/A"

// ResolveContacts looks up the contact email for every distinct
// assignee across the given tasks. The lookups are independent reads,
// so they are fired concurrently and only the aggregate completion
// matters. A failed lookup degrades that assignee to N/A instead of
// failing the whole list.
func (c *Client) ResolveContacts(ctx context.Context, tasks []models.Task) map[string]string {
	ids := make(map[string]bool)
	for i := range tasks {
		if tasks[i].HasAssignee() {
			ids[tasks[i].AssignedTo] = true
		}
	}

	contacts := make(map[string]string, len(ids))
	var mu sync.Mutex
	var wg sync.WaitGroup

	for id := range ids {
		wg.Add(1)
		go func(id string) {
			defer wg.Done()

			user, err := c.GetUser(ctx, id)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				c.log.Warn().Err(err).Str("user_id", id).Msg("Failed to resolve assignee")
				contacts[id] = ContactUnavailable
				return
			}
			contacts[id] = user.Email
		}(id)
	}

	wg.Wait()
	return contacts
}
