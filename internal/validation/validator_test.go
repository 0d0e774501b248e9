package validation

import (
	"sync"
	"testing"
	"time"

	"designzone/internal/design"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateDesign(t *testing.T) {
	settings := Settings{
		MaxTextLength: Int(10),
		BlockedWords:  []string{"spam"},
		MinImageWidth: Float(100),
	}

	t.Run("one bad text, one good image", func(t *testing.T) {
		nodes := []design.Node{
			{ID: "t1", Kind: design.KindText, Text: "this text is far too long"},
			{ID: "i1", Kind: design.KindImage, Width: 200, Height: 200},
		}

		result := ValidateDesign(nodes, settings)
		assert.False(t, result.IsValid)
		require.Len(t, result.Errors, 1)
		assert.Empty(t, result.Warnings)

		issue := result.Errors[0]
		assert.Equal(t, "text-t1", issue.Field)
		assert.Equal(t, SeverityError, issue.Severity)
		assert.Contains(t, issue.Message, "10 characters")
	})

	t.Run("image error keyed by id", func(t *testing.T) {
		nodes := []design.Node{
			{ID: "i1", Kind: design.KindImage, Width: 20, Height: 200},
			{ID: "t1", Kind: design.KindText, Text: "SPAM"},
		}

		result := ValidateDesign(nodes, settings)
		assert.False(t, result.IsValid)
		require.Len(t, result.Errors, 2)
		assert.Equal(t, "image-i1", result.Errors[0].Field)
		assert.Equal(t, "text-t1", result.Errors[1].Field)
	})

	t.Run("shapes and groups are not content checked", func(t *testing.T) {
		nodes := []design.Node{
			{ID: "s", Kind: design.KindShape, Width: 1, Height: 1},
			{ID: "g", Kind: design.KindGroup, Text: "spam"},
		}

		result := ValidateDesign(nodes, settings)
		assert.True(t, result.IsValid)
		assert.NotNil(t, result.Errors)
		assert.NotNil(t, result.Warnings)
	})

	t.Run("text nested in a group is checked", func(t *testing.T) {
		nodes := []design.Node{
			{ID: "g", Kind: design.KindGroup, Children: []design.Node{
				{ID: "inner", Kind: design.KindGroup, Children: []design.Node{
					{ID: "t9", Kind: design.KindText, Text: "spam"},
				}},
				{ID: "i9", Kind: design.KindImage, Width: 300, Height: 300},
			}},
		}

		result := ValidateDesign(nodes, settings)
		assert.False(t, result.IsValid)
		require.Len(t, result.Errors, 1)
		assert.Equal(t, "text-t9", result.Errors[0].Field)
		assert.Contains(t, result.Errors[0].Message, "spam")
	})

	t.Run("flattened children reported once", func(t *testing.T) {
		child := design.Node{ID: "t9", Kind: design.KindText, Text: "spam"}
		nodes := []design.Node{
			{ID: "g", Kind: design.KindGroup, Children: []design.Node{child}},
			child,
		}

		result := ValidateDesign(nodes, settings)
		require.Len(t, result.Errors, 1)
		assert.Equal(t, "text-t9", result.Errors[0].Field)
	})

	t.Run("nodes without ids are all checked", func(t *testing.T) {
		nodes := []design.Node{
			{Kind: design.KindText, Text: "spam"},
			{Kind: design.KindText, Text: "more spam"},
		}

		result := ValidateDesign(nodes, settings)
		assert.Len(t, result.Errors, 2)
	})

	t.Run("complexity is a warning only", func(t *testing.T) {
		s := Settings{MaxComplexity: Float(2)}
		result := ValidateDesign(plainNodes(3), s)

		assert.True(t, result.IsValid)
		assert.Empty(t, result.Errors)
		require.Len(t, result.Warnings, 1)
		assert.Equal(t, "design", result.Warnings[0].Field)
		assert.Equal(t, SeverityWarning, result.Warnings[0].Severity)
		assert.Contains(t, result.Warnings[0].Message, "3.0")
	})

	t.Run("no complexity limit no warning", func(t *testing.T) {
		result := ValidateDesign(plainNodes(50), Settings{})
		assert.True(t, result.IsValid)
		assert.Empty(t, result.Warnings)
	})

	t.Run("empty design", func(t *testing.T) {
		result := ValidateDesign(nil, settings)
		assert.True(t, result.IsValid)
	})
}

func TestValidateDesignDoesNotMutate(t *testing.T) {
	nodes := []design.Node{
		{ID: "t1", Kind: design.KindText, Text: "spam"},
		{ID: "i1", Kind: design.KindImage, Width: 1, Height: 1, Filters: []string{"blur"}},
	}
	settings := Settings{BlockedWords: []string{"spam"}, MinImageWidth: Float(10), MaxComplexity: Float(0)}

	before := append([]design.Node(nil), nodes...)
	_ = ValidateDesign(nodes, settings)

	assert.Equal(t, before, nodes)
	assert.Equal(t, []string{"spam"}, settings.BlockedWords)
}

func TestValidateDesignConcurrent(t *testing.T) {
	nodes := []design.Node{
		{ID: "t1", Kind: design.KindText, Text: "hello world"},
		{ID: "i1", Kind: design.KindImage, Width: 50, Height: 50},
	}
	settings := Settings{MaxTextLength: Int(5), MinImageWidth: Float(100), MaxComplexity: Float(1)}
	want := ValidateDesign(nodes, settings)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Equal(t, want, ValidateDesign(nodes, settings))
		}()
	}
	wg.Wait()
}

func TestSettingsValidate(t *testing.T) {
	assert.NoError(t, Settings{}.Validate())
	assert.NoError(t, Settings{MaxTextLength: Int(0), MaxImageWidth: Float(10)}.Validate())

	err := Settings{MaxTextLength: Int(-1)}.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "MaxTextLength")

	assert.Error(t, Settings{MinImageHeight: Float(-5)}.Validate())
	assert.Error(t, Settings{MaxComplexity: Float(-0.5)}.Validate())
}

func TestThrottle(t *testing.T) {
	clock := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	th := NewThrottle(time.Second, 2)
	th.now = func() time.Time { return clock }

	nodes := []design.Node{{ID: "t1", Kind: design.KindText, Text: "hello world"}}
	settings := Settings{MaxTextLength: Int(5)}

	r, ok := th.Validate("design-a", nodes, settings)
	assert.True(t, ok)
	assert.False(t, r.IsValid)

	_, ok = th.Validate("design-a", nodes, settings)
	assert.True(t, ok, "burst")

	_, ok = th.Validate("design-a", nodes, settings)
	assert.False(t, ok, "suppressed after burst")

	// other designs have their own budget
	assert.True(t, th.Allow("design-b"))

	// suppressed calls never serve a stale result
	clock = clock.Add(time.Second)
	nodes[0].Text = "hi"
	r, ok = th.Validate("design-a", nodes, settings)
	assert.True(t, ok)
	assert.True(t, r.IsValid)

	assert.Equal(t, 2, th.Len())
	clock = clock.Add(time.Hour)
	th.Cleanup(time.Minute)
	assert.Zero(t, th.Len())
}

func TestNewThrottleDefaults(t *testing.T) {
	th := NewThrottle(0, 0)
	assert.Equal(t, DefaultThrottleEvery, th.every)
	assert.Equal(t, DefaultThrottleBurst, th.burst)
}
