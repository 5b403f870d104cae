package classifier

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtension(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"a.png", "png"},
		{"c.PY", "py"},
		{"archive.tar.gz", "gz"},
		{"noext", ""},
		{"trailing.", ""},
		{".bashrc", "bashrc"},
		{"photo.JpEg", "jpeg"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Extension(tt.name))
		})
	}
}

func TestRoutingTable(t *testing.T) {
	cat, ok := Lookup("png")
	assert.True(t, ok)
	assert.Equal(t, "images", cat)

	cat, ok = Lookup("cpp")
	assert.True(t, ok)
	assert.Equal(t, "c++", cat)

	_, ok = Lookup("txt")
	assert.False(t, ok)

	// 查找只接受规范化后的扩展名
	_, ok = Lookup("PNG")
	assert.False(t, ok)

	assert.Equal(t, []string{"images", "python", "c++"}, Categories())
	assert.Equal(t, []string{"png", "jpg", "jpeg"}, ExtensionsFor("images"))
	assert.Len(t, Routes(), 5)
}

func TestNewExtSet(t *testing.T) {
	set := NewExtSet("PNG", ".jpg", "  py ", "", ".")
	assert.Equal(t, 3, set.Len())
	assert.True(t, set.Has("png"))
	assert.True(t, set.Has("jpg"))
	assert.True(t, set.Has("py"))
	assert.Equal(t, "jpg,png,py", set.String())

	// 顺序无关
	assert.Equal(t, NewExtSet("a", "b"), NewExtSet("b", "a"))

	var empty ExtSet
	assert.False(t, empty.Has("png"))
	assert.Equal(t, 0, empty.Len())
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		filter   Filter
		file     string
		reason   SkipReason
		category string
	}{
		{"no filters png", Filter{}, "a.png", Eligible, "images"},
		{"mixed case py", Filter{}, "c.PY", Eligible, "python"},
		{"unmapped", Filter{}, "b.txt", Unmapped, ""},
		{"no extension", Filter{}, "noext", NoExtension, ""},
		{"trailing dot", Filter{}, "weird.", NoExtension, ""},
		{"include hit", Filter{Include: NewExtSet("png")}, "a.png", Eligible, "images"},
		{"include miss", Filter{Include: NewExtSet("png")}, "b.jpg", NotIncluded, "images"},
		{"exclude", Filter{Exclude: NewExtSet("cpp")}, "main.cpp", Excluded, "c++"},
		{"exclude wins over include", Filter{Include: NewExtSet("png", "jpg"), Exclude: NewExtSet("jpg")}, "b.jpg", Excluded, "images"},
		{"unmapped beats include", Filter{Include: NewExtSet("txt")}, "b.txt", Unmapped, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := tt.filter.Classify(tt.file)
			assert.Equal(t, tt.reason, d.Reason)
			assert.Equal(t, tt.reason == Eligible, d.Moves())
			if tt.category != "" {
				assert.Equal(t, tt.category, d.Category)
			}
		})
	}
}

func TestExcludeAlwaysWins(t *testing.T) {
	for _, r := range Routes() {
		f := Filter{Include: NewExtSet(r.Extension), Exclude: NewExtSet(r.Extension)}
		d := f.Classify("file." + r.Extension)
		assert.Equal(t, Excluded, d.Reason, r.Extension)
	}
}

func TestSkipReasonString(t *testing.T) {
	assert.Equal(t, "未映射的扩展名", Unmapped.String())
	assert.Equal(t, "已被排除", Excluded.String())
	assert.Equal(t, "未知", SkipReason(99).String())
}
