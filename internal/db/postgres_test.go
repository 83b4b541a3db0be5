package db

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Migration disables gorm's tag-derived constraints, so the explicit FK list
// is the only store-level enforcement. These tests pin its coverage.
func TestForeignKeys_CoverEveryChildColumn(t *testing.T) {
	want := map[string]string{
		"user_token.member_id":    "member.id",
		"orders.member_id":        "member.id",
		"order_item.order_id":     "orders.id",
		"order_item.blueprint_id": "blueprint.id",
		"qna_board.member_id":     "member.id",
		"qna_reply.qna_board_id":  "qna_board.id",
		"qna_reply.member_id":     "member.id",
	}

	got := map[string]string{}
	for _, fk := range foreignKeys() {
		got[fk.Table+"."+fk.Column] = fk.RefTable + "." + fk.RefColumn
	}
	assert.Equal(t, want, got)
}

func TestForeignKeys_MemberChildrenCascade(t *testing.T) {
	for _, fk := range foreignKeys() {
		if fk.RefTable == "member" {
			assert.Equalf(t, "CASCADE", fk.OnDelete, "%s must cascade with its member", fk.Table)
		}
	}
}

func TestForeignKeys_BlueprintReferencesRestrict(t *testing.T) {
	// Order items snapshot prices but still point at the catalog row; the
	// row must not be deletable out from under purchase history.
	for _, fk := range foreignKeys() {
		if fk.RefTable == "blueprint" {
			assert.Equal(t, "RESTRICT", fk.OnDelete)
		}
	}
}

func TestForeignKeys_DDL(t *testing.T) {
	for _, fk := range foreignKeys() {
		t.Run(fk.Name, func(t *testing.T) {
			require.NotEmpty(t, fk.Name)
			assert.Contains(t, fk.DropDDL(), fmt.Sprintf("DROP CONSTRAINT IF EXISTS %q", fk.Name))
			add := fk.AddDDL()
			assert.Contains(t, add, fmt.Sprintf("ALTER TABLE %q", fk.Table))
			assert.Contains(t, add, fmt.Sprintf("ADD CONSTRAINT %q", fk.Name))
			assert.Contains(t, add, fmt.Sprintf("REFERENCES %q(%q)", fk.RefTable, fk.RefColumn))
			assert.Contains(t, add, "ON DELETE "+fk.OnDelete)
		})
	}
}
