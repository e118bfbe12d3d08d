package idcdump

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsCName(t *testing.T) {
	golden := []struct {
		name string
		want bool
	}{
		{name: "_main", want: true},
		{name: "@foo@8", want: true},
		{name: "_Z3foov", want: true},
		{name: "main", want: false},
		{name: "g_counter", want: false},
		{name: "", want: false},
	}
	for _, g := range golden {
		assert.Equal(t, g.want, IsCName(g.name), g.name)
	}
}

func TestIsCXXName(t *testing.T) {
	golden := []struct {
		name string
		want bool
	}{
		{name: "_Z3foov", want: true},
		{name: "?bar@@YIXH@Z", want: true},
		{name: "g_counter", want: true},
		{name: "foo::bar", want: true},
		{name: "std::vector<int>::push_back", want: true},
		{name: "_main", want: false},
		{name: "@foo@8", want: false},
		{name: "g", want: false},
		{name: "foo:bar", want: false},
		{name: "", want: false},
	}
	for _, g := range golden {
		assert.Equal(t, g.want, IsCXXName(g.name), g.name)
	}
}

func TestShouldDump(t *testing.T) {
	golden := []struct {
		name string
		want bool
	}{
		{name: "@foo", want: true},
		{name: "_main", want: true},
		{name: "_Z3foov", want: true},
		{name: "?bar@@YIXH@Z", want: true},
		{name: "g_counter", want: true},
		{name: "ns::func", want: true},
		{name: "hello", want: false},
		{name: "123abc", want: false},
		{name: "foo.bar", want: false},
		{name: "sub_401000", want: false},
		{name: "G_counter", want: false},
		{name: "", want: false},
	}
	for _, g := range golden {
		assert.Equal(t, g.want, ShouldDump(g.name), g.name)
	}
}
