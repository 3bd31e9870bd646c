// Package listview derives the visible page of a task list from the
// in-memory task collection and its query state. It performs no
// network I/O: tasks and the assignee contact table are handed to it
// already fetched.
package listview

import (
	"sort"
	"strings"

	"github.com/Hamidziya/crm-edfront/internal/models"
)

// SortDirection orders tasks by creation timestamp
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// View holds one mounted list's tasks and query parameters and
// recomputes the visible projection on demand. Recomputation is pure:
// the same inputs always yield the same page.
//
// The selected sort direction is applied exactly once. The admin
// screen this replaces layered an unconditional reverse on top of the
// direction sort, flipping the meaning of the sort toggle in that one
// view; both views here honor the direction as labeled.
type View struct {
	tasks    []models.Task
	contacts map[string]string

	search   string
	status   models.TaskStatus
	sortDir  SortDirection
	page     int
	pageSize int
}

// New creates a view showing newest tasks first on page 1.
func New(pageSize int) *View {
	if pageSize < 1 {
		pageSize = 1
	}
	return &View{
		sortDir:  SortDesc,
		page:     1,
		pageSize: pageSize,
	}
}

// SetTasks replaces the task collection, keeping the current page
// subject to re-clamping on the next projection.
func (v *View) SetTasks(tasks []models.Task) {
	v.tasks = tasks
}

// SetContacts replaces the assignee contact table (user id to email).
func (v *View) SetContacts(contacts map[string]string) {
	v.contacts = contacts
}

// SetSearch applies a search term and returns to the first page.
func (v *View) SetSearch(term string) {
	v.search = term
	v.page = 1
}

// SetStatusFilter narrows the list to one status; the zero value
// shows all. Changing the filter returns to the first page.
func (v *View) SetStatusFilter(status models.TaskStatus) {
	v.status = status
	v.page = 1
}

// SetSort selects the creation-date sort direction.
func (v *View) SetSort(dir SortDirection) {
	if dir == SortAsc || dir == SortDesc {
		v.sortDir = dir
	}
}

// ToggleSort flips between ascending and descending.
func (v *View) ToggleSort() {
	if v.sortDir == SortAsc {
		v.sortDir = SortDesc
	} else {
		v.sortDir = SortAsc
	}
}

// SetPage requests a page; it is clamped against the filtered count
// when the projection is computed.
func (v *View) SetPage(page int) {
	v.page = page
}

// RemoveTask drops a deleted task from the collection. The current
// page is re-clamped on the next projection, so deleting the last row
// of the last page never strands the view on an empty page.
func (v *View) RemoveTask(id string) {
	kept := make([]models.Task, 0, len(v.tasks))
	for _, t := range v.tasks {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	v.tasks = kept
}

// matches reports whether the task satisfies the search term on its
// title, description, or resolved assignee contact. A task whose
// assignee cannot be resolved simply never matches on that field.
func (v *View) matches(t *models.Task) bool {
	if v.search == "" {
		return true
	}
	term := strings.ToLower(v.search)
	if strings.Contains(strings.ToLower(t.Title), term) {
		return true
	}
	if strings.Contains(strings.ToLower(t.Description), term) {
		return true
	}
	if t.HasAssignee() {
		if contact, ok := v.contacts[t.AssignedTo]; ok {
			return strings.Contains(strings.ToLower(contact), term)
		}
	}
	return false
}

// filtered computes the sorted, filtered sequence backing pagination.
func (v *View) filtered() []models.Task {
	sorted := make([]models.Task, len(v.tasks))
	copy(sorted, v.tasks)

	// Stable: ties keep their original relative order
	sort.SliceStable(sorted, func(i, j int) bool {
		if v.sortDir == SortAsc {
			return sorted[i].CreatedAt.Before(sorted[j].CreatedAt)
		}
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})

	filtered := sorted[:0]
	for i := range sorted {
		t := &sorted[i]
		if v.status != "" && t.Status != v.status {
			continue
		}
		if !v.matches(t) {
			continue
		}
		filtered = append(filtered, *t)
	}
	return filtered
}

// Visible returns the tasks on the current page after clamping.
func (v *View) Visible() []models.Task {
	filtered := v.filtered()
	v.clamp(len(filtered))

	first := (v.page - 1) * v.pageSize
	last := first + v.pageSize
	if first > len(filtered) {
		first = len(filtered)
	}
	if last > len(filtered) {
		last = len(filtered)
	}
	return filtered[first:last]
}

// Page returns the current page number, clamped against the filtered
// count.
func (v *View) Page() int {
	v.clamp(len(v.filtered()))
	return v.page
}

// TotalPages returns how many pages the filtered collection spans, at
// least 1.
func (v *View) TotalPages() int {
	return totalPages(len(v.filtered()), v.pageSize)
}

func (v *View) clamp(filteredCount int) {
	max := totalPages(filteredCount, v.pageSize)
	if v.page > max {
		v.page = max
	}
	if v.page < 1 {
		v.page = 1
	}
}

func totalPages(count, pageSize int) int {
	pages := (count + pageSize - 1) / pageSize
	if pages < 1 {
		pages = 1
	}
	return pages
}
