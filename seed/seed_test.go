package seed

import (
	"testing"
)

func TestDatasetsDecode(t *testing.T) {
	if len(Clients()) == 0 {
		t.Error("clients dataset is empty")
	}
	if len(Projects()) == 0 {
		t.Error("projects dataset is empty")
	}
	if len(Tasks()) == 0 {
		t.Error("tasks dataset is empty")
	}
	if len(Users()) == 0 {
		t.Error("users dataset is empty")
	}
	if len(Timesheets()) == 0 {
		t.Error("timesheets dataset is empty")
	}
	if len(Roles()) == 0 {
		t.Error("roles dataset is empty")
	}
	if len(Settings()) != 1 {
		t.Errorf("settings dataset has %d records, want exactly 1", len(Settings()))
	}
}

func TestIDsAreUniquePerDataset(t *testing.T) {
	checkUnique := func(name string, ids []string) {
		seen := map[string]bool{}
		for _, id := range ids {
			if id == "" {
				t.Errorf("%s: record with empty id", name)
				continue
			}
			if seen[id] {
				t.Errorf("%s: duplicate id %s", name, id)
			}
			seen[id] = true
		}
	}

	var clientIDs []string
	for _, c := range Clients() {
		clientIDs = append(clientIDs, c.ID)
	}
	checkUnique("clients", clientIDs)

	var projectIDs []string
	for _, p := range Projects() {
		projectIDs = append(projectIDs, p.ID)
	}
	checkUnique("projects", projectIDs)

	var taskIDs []string
	for _, task := range Tasks() {
		taskIDs = append(taskIDs, task.ID)
	}
	checkUnique("tasks", taskIDs)

	var userIDs []string
	for _, u := range Users() {
		userIDs = append(userIDs, u.ID)
	}
	checkUnique("users", userIDs)
}

func TestProjectReferencesResolve(t *testing.T) {
	clients := map[string]string{}
	for _, c := range Clients() {
		clients[c.ID] = c.Name
	}
	users := map[string]string{}
	for _, u := range Users() {
		users[u.ID] = u.Name
	}

	for _, p := range Projects() {
		name, ok := clients[p.Client.ID]
		if !ok {
			t.Errorf("project %s references unknown client %s", p.Code, p.Client.ID)
			continue
		}
		if p.Client.Name != name {
			t.Errorf("project %s client snapshot name = %q, want %q", p.Code, p.Client.Name, name)
		}
		if p.ProjectManager.ID != "" {
			if _, ok := users[p.ProjectManager.ID]; !ok {
				t.Errorf("project %s references unknown manager %s", p.Code, p.ProjectManager.ID)
			}
		}
	}
}

func TestTaskReferencesResolve(t *testing.T) {
	projects := map[string]bool{}
	for _, p := range Projects() {
		projects[p.ID] = true
	}

	for _, task := range Tasks() {
		if !projects[task.Project.ID] {
			t.Errorf("task %s references unknown project %s", task.Code, task.Project.ID)
		}
	}
}

func TestClientProjectCountsMatchProjects(t *testing.T) {
	counts := map[string]int{}
	for _, p := range Projects() {
		counts[p.Client.ID]++
	}
	for _, c := range Clients() {
		if c.Projects != counts[c.ID] {
			t.Errorf("client %s projects = %d, want %d", c.Code, c.Projects, counts[c.ID])
		}
	}
}

func TestTimesheetTotalsMatchEntries(t *testing.T) {
	for _, ts := range Timesheets() {
		var sum float64
		for _, e := range ts.Entries {
			sum += e.Hours
		}
		if ts.TotalHours != sum {
			t.Errorf("timesheet %s totalHours = %v, want %v", ts.Code, ts.TotalHours, sum)
		}
	}
}
