package model

import "testing"

func TestTaskStatus_IsActive(t *testing.T) {
	tests := []struct {
		status   TaskStatus
		expected bool
	}{
		{TaskStatusPending, true},
		{TaskStatusDownloading, true},
		{TaskStatusCompleted, false},
		{TaskStatusError, false},
	}

	for _, test := range tests {
		result := test.status.IsActive()
		if result != test.expected {
			t.Errorf("TaskStatus(%s).IsActive() = %v, expected %v", test.status, result, test.expected)
		}
	}
}

func TestTaskStatus_IsFinished(t *testing.T) {
	tests := []struct {
		status   TaskStatus
		expected bool
	}{
		{TaskStatusPending, false},
		{TaskStatusDownloading, false},
		{TaskStatusCompleted, true},
		{TaskStatusError, true},
	}

	for _, test := range tests {
		result := test.status.IsFinished()
		if result != test.expected {
			t.Errorf("TaskStatus(%s).IsFinished() = %v, expected %v", test.status, result, test.expected)
		}
	}
}

func TestTaskStatus_String(t *testing.T) {
	status := TaskStatusDownloading
	expected := "Downloading"
	result := status.String()

	if result != expected {
		t.Errorf("TaskStatus.String() = %s, expected %s", result, expected)
	}
}

func TestUIStatus(t *testing.T) {
	tests := []struct {
		status    UIStatus
		busy      bool
		showsGrid bool
	}{
		{UIStatusLoading, true, false},
		{UIStatusReady, false, true},
		{UIStatusRefreshing, true, true},
	}

	for _, test := range tests {
		if got := test.status.IsBusy(); got != test.busy {
			t.Errorf("UIStatus(%s).IsBusy() = %v, expected %v", test.status, got, test.busy)
		}
		if got := test.status.ShowsGrid(); got != test.showsGrid {
			t.Errorf("UIStatus(%s).ShowsGrid() = %v, expected %v", test.status, got, test.showsGrid)
		}
	}
}
