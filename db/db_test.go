package db

import "testing"

func newTestDB(t *testing.T) *DB {
	t.Helper()
	database, err := New(":memory:")
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() { database.Close() })
	if err := database.Initialize(); err != nil {
		t.Fatalf("Failed to initialize test database: %v", err)
	}
	return database
}

func TestStatsStartAtZero(t *testing.T) {
	database := newTestDB(t)

	chats, searches, err := database.Stats()
	if err != nil {
		t.Fatalf("Stats failed: %v", err)
	}
	if chats != 0 || searches != 0 {
		t.Errorf("Expected zero counters, got chats=%d searches=%d", chats, searches)
	}
}

func TestRecordChatIsIdempotent(t *testing.T) {
	database := newTestDB(t)

	for i := 0; i < 3; i++ {
		if err := database.RecordChat(1001); err != nil {
			t.Fatalf("RecordChat failed: %v", err)
		}
	}
	if err := database.RecordChat(1002); err != nil {
		t.Fatalf("RecordChat failed: %v", err)
	}

	chats, _, err := database.Stats()
	if err != nil {
		t.Fatalf("Stats failed: %v", err)
	}
	if chats != 2 {
		t.Errorf("Expected 2 distinct chats, got %d", chats)
	}
}

func TestIncrementSearches(t *testing.T) {
	database := newTestDB(t)

	for i := 0; i < 5; i++ {
		if err := database.IncrementSearches(); err != nil {
			t.Fatalf("IncrementSearches failed: %v", err)
		}
	}

	_, searches, err := database.Stats()
	if err != nil {
		t.Fatalf("Stats failed: %v", err)
	}
	if searches != 5 {
		t.Errorf("Expected 5 searches, got %d", searches)
	}
}
