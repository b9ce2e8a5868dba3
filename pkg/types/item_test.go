package types

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseItemType(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    ItemType
		wantErr bool
	}{
		{name: "incident", input: "incident", want: ItemTypeIncident},
		{name: "instruction", input: "instruction", want: ItemTypeInstruction},
		{name: "unknown", input: "memo", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "case sensitive", input: "Incident", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseItemType(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestItemCreateValidate(t *testing.T) {
	valid := ItemCreate{
		Title:    "Press failure",
		ItemType: ItemTypeIncident,
		Pages: []PageInput{
			{Title: "Shut down", Time: "5 minutes", Actions: []string{"Hit the red button"}},
		},
	}

	tests := []struct {
		name      string
		mutate    func(*ItemCreate)
		wantField string
	}{
		{name: "valid", mutate: func(c *ItemCreate) {}},
		{name: "empty title", mutate: func(c *ItemCreate) { c.Title = "" }, wantField: "title"},
		{name: "title too long", mutate: func(c *ItemCreate) { c.Title = strings.Repeat("x", MaxTitleLen+1) }, wantField: "title"},
		{name: "bad type", mutate: func(c *ItemCreate) { c.ItemType = "memo" }, wantField: "item_type"},
		{name: "empty page title", mutate: func(c *ItemCreate) { c.Pages[0].Title = "" }, wantField: "pages[0].title"},
		{name: "page time too long", mutate: func(c *ItemCreate) { c.Pages[0].Time = strings.Repeat("x", MaxTimeLen+1) }, wantField: "pages[0].time"},
		{name: "empty action", mutate: func(c *ItemCreate) { c.Pages[0].Actions = []string{""} }, wantField: "pages[0].actions[0]"},
		{name: "action too long", mutate: func(c *ItemCreate) { c.Pages[0].Actions = []string{strings.Repeat("x", MaxActionLen+1)} }, wantField: "pages[0].actions[0]"},
		{name: "no pages is fine", mutate: func(c *ItemCreate) { c.Pages = nil }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid
			c.Pages = append([]PageInput(nil), valid.Pages...)
			c.Pages[0].Actions = append([]string(nil), valid.Pages[0].Actions...)
			tt.mutate(&c)

			err := c.Validate()
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.wantField, verr.Field)
		})
	}
}

func TestItemUpdateValidate(t *testing.T) {
	empty := ""
	long := strings.Repeat("x", MaxTitleLen+1)
	bad := ItemType("memo")
	good := "Updated"

	t.Run("all fields omitted", func(t *testing.T) {
		assert.NoError(t, ItemUpdate{}.Validate())
	})
	t.Run("title present and valid", func(t *testing.T) {
		assert.NoError(t, ItemUpdate{Title: &good}.Validate())
	})
	t.Run("title present but empty", func(t *testing.T) {
		assert.Error(t, ItemUpdate{Title: &empty}.Validate())
	})
	t.Run("title present but too long", func(t *testing.T) {
		assert.Error(t, ItemUpdate{Title: &long}.Validate())
	})
	t.Run("bad item type", func(t *testing.T) {
		assert.Error(t, ItemUpdate{ItemType: &bad}.Validate())
	})
	t.Run("pages present and invalid", func(t *testing.T) {
		pages := []PageInput{{Title: ""}}
		assert.Error(t, ItemUpdate{Pages: &pages}.Validate())
	})
	t.Run("pages present and empty replaces subtree", func(t *testing.T) {
		pages := []PageInput{}
		assert.NoError(t, ItemUpdate{Pages: &pages}.Validate())
	})
}
