package cli

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/Hamidziya/crm-edfront/internal/api"
	"github.com/Hamidziya/crm-edfront/internal/config"
	"github.com/Hamidziya/crm-edfront/internal/models"
	"github.com/Hamidziya/crm-edfront/internal/session"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

func newTestApp(t *testing.T, register func(*gin.Engine)) (*App, *bytes.Buffer) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	router := gin.New()
	register(router)
	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	sessionFile := filepath.Join(t.TempDir(), "session.json")
	store := session.NewStore(sessionFile)
	if err := store.Save(&session.Session{
		Token: "test-token",
		User:  models.User{ID: "u1", Email: "admin@example.com", Role: models.RoleAdmin},
	}); err != nil {
		t.Fatalf("failed to seed session: %v", err)
	}

	out := &bytes.Buffer{}
	app := &App{
		cfg: &config.Config{
			API:     config.APIConfig{BaseURL: server.URL, Timeout: 5 * time.Second},
			Session: config.SessionConfig{File: sessionFile},
			List:    config.ListConfig{AdminPageSize: 9, UserPageSize: 10},
		},
		log:    zerolog.Nop(),
		client: api.NewClient(server.URL, 5*time.Second, zerolog.Nop()),
		store:  store,
		out:    out,
		in:     strings.NewReader(""),
	}
	return app, out
}

func TestImportCommand(t *testing.T) {
	var gotBatch []models.CandidateRecord
	app, out := newTestApp(t, func(r *gin.Engine) {
		r.POST("/task/bulk-create", func(c *gin.Context) {
			var body struct {
				Tasks []models.CandidateRecord `json:"tasks"`
			}
			if err := c.ShouldBindJSON(&body); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"message": "bad request"})
				return
			}
			gotBatch = body.Tasks
			c.JSON(http.StatusCreated, gin.H{"message": "imported", "importedCount": len(body.Tasks)})
		})
	})

	csvPath := filepath.Join(t.TempDir(), "leads.csv")
	content := "Title,Description,Name,Email,Mobile\n" +
		"Lead A,First,John,john@example.com,123\n" +
		"Lead B,Second,Jane,,456\n" +
		"Lead C,Third,Jim,jim@example.com,789\n"
	if err := os.WriteFile(csvPath, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write csv: %v", err)
	}

	cmd := app.newImportCmd()
	cmd.SetArgs([]string{csvPath, "--yes"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("import command error: %v", err)
	}

	if len(gotBatch) != 2 {
		t.Fatalf("server received %d records, want 2 (incomplete row dropped)", len(gotBatch))
	}
	output := out.String()
	if !strings.Contains(output, "2 records found") {
		t.Errorf("preview header missing from output:\n%s", output)
	}
	if !strings.Contains(output, "1 incomplete rows skipped") {
		t.Errorf("dropped-row note missing from output:\n%s", output)
	}
	if !strings.Contains(output, "Successfully imported 2 leads") {
		t.Errorf("success message missing from output:\n%s", output)
	}
}

func TestImportCommandMissingColumn(t *testing.T) {
	app, _ := newTestApp(t, func(r *gin.Engine) {})

	csvPath := filepath.Join(t.TempDir(), "leads.csv")
	content := "Title,Description,Name,Email\nLead A,First,John,john@example.com\n"
	if err := os.WriteFile(csvPath, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write csv: %v", err)
	}

	cmd := app.newImportCmd()
	cmd.SetArgs([]string{csvPath, "--yes"})
	err := cmd.Execute()
	if err == nil {
		t.Fatal("expected missing-column error, got nil")
	}
	if !strings.Contains(err.Error(), "mobile") {
		t.Errorf("error should name the missing column: %v", err)
	}
}

func TestImportCommandDeclined(t *testing.T) {
	called := false
	app, out := newTestApp(t, func(r *gin.Engine) {
		r.POST("/task/bulk-create", func(c *gin.Context) {
			called = true
			c.JSON(http.StatusCreated, gin.H{"message": "imported"})
		})
	})
	app.in = strings.NewReader("n\n")

	csvPath := filepath.Join(t.TempDir(), "leads.csv")
	content := "Title,Description,Name,Email,Mobile\nLead A,First,John,john@example.com,123\n"
	if err := os.WriteFile(csvPath, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write csv: %v", err)
	}

	cmd := app.newImportCmd()
	cmd.SetArgs([]string{csvPath})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("import command error: %v", err)
	}
	if called {
		t.Error("declined import still hit the API")
	}
	if !strings.Contains(out.String(), "Import cancelled.") {
		t.Errorf("cancellation message missing:\n%s", out.String())
	}
}

func TestTasksListCommand(t *testing.T) {
	app, out := newTestApp(t, func(r *gin.Engine) {
		r.GET("/task/tasks", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"tasks": []gin.H{
				{"_id": "t1", "title": "Old lead", "description": "first", "status": "Pending",
					"assignedTo": "u1", "createdAt": "2025-01-01T10:00:00Z"},
				{"_id": "t2", "title": "New lead", "description": "second", "status": "Completed",
					"mobile": "555", "createdAt": "2025-02-01T10:00:00Z"},
			}})
		})
		r.GET("/user/getuser/:id", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"_id": c.Param("id"), "email": "agent@example.com", "role": "user"})
		})
	})

	cmd := app.newTasksListCmd()
	cmd.SetArgs([]string{"--sort", "desc"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("tasks list error: %v", err)
	}

	output := out.String()
	if !strings.Contains(output, "agent@example.com") {
		t.Errorf("resolved assignee missing:\n%s", output)
	}
	if !strings.Contains(output, "Page 1 of 1") {
		t.Errorf("pagination footer missing:\n%s", output)
	}
	// desc puts the newest lead first
	if strings.Index(output, "New lead") > strings.Index(output, "Old lead") {
		t.Errorf("descending sort not honored:\n%s", output)
	}
}
