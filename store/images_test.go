// Copyright (c) 2025 Adrian Vogel.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"testing"

	"github.com/avogel3/costumevote/testutil"
)

func TestImageLinkAndFor(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	eventID := testutil.CreateVotingEvent(t, conn)
	authCode := testutil.CreateTestCode(t, conn, eventID, false)

	images := NewImages(conn)

	id, err := images.For(authCode)
	if err != nil {
		t.Fatalf("For failed: %v", err)
	}
	if id != "" {
		t.Errorf("Expected no image before upload, got %q", id)
	}

	if err := images.Link(authCode, "img-1"); err != nil {
		t.Fatalf("Link failed: %v", err)
	}
	id, err = images.For(authCode)
	if err != nil {
		t.Fatalf("For failed: %v", err)
	}
	if id != "img-1" {
		t.Errorf("Expected img-1, got %q", id)
	}

	// Re-uploading replaces the link.
	if err := images.Link(authCode, "img-2"); err != nil {
		t.Fatalf("Link failed: %v", err)
	}
	id, _ = images.For(authCode)
	if id != "img-2" {
		t.Errorf("Expected img-2 after replacement, got %q", id)
	}
}
