package contact

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRecord(t *testing.T, name string, phones ...string) *Record {
	t.Helper()
	n, err := NewName(name)
	require.NoError(t, err)
	r, err := NewRecord(n)
	require.NoError(t, err)
	for _, p := range phones {
		require.NoError(t, r.AddPhone(p))
	}
	return r
}

func phoneValues(r *Record) []string {
	var out []string
	for _, p := range r.Phones() {
		out = append(out, p.String())
	}
	return out
}

func TestNewRecord_StartsEmpty(t *testing.T) {
	r := newTestRecord(t, "Alice")

	assert.Equal(t, "Alice", r.Name().String())
	assert.Empty(t, r.Phones())
}

func TestNewRecord_RejectsZeroName(t *testing.T) {
	_, err := NewRecord(Name{})
	assert.ErrorIs(t, err, ErrInvalidName)
}

func TestRecord_AddPhone(t *testing.T) {
	t.Run("appends in order and allows duplicates", func(t *testing.T) {
		r := newTestRecord(t, "Alice")

		require.NoError(t, r.AddPhone("1111111111"))
		require.NoError(t, r.AddPhone("2222222222"))
		require.NoError(t, r.AddPhone("1111111111"))

		assert.Equal(t, []string{"1111111111", "2222222222", "1111111111"}, phoneValues(r))
	})

	t.Run("invalid phone leaves record unchanged", func(t *testing.T) {
		r := newTestRecord(t, "Alice", "1111111111")

		err := r.AddPhone("123")

		assert.ErrorIs(t, err, ErrInvalidPhone)
		assert.Equal(t, []string{"1111111111"}, phoneValues(r))
	})
}

func TestRecord_FindPhone(t *testing.T) {
	r := newTestRecord(t, "Alice", "1111111111", "2222222222", "1111111111")

	i, err := r.FindPhone("1111111111")
	require.NoError(t, err)
	assert.Equal(t, 0, i, "first match wins")

	i, err = r.FindPhone("2222222222")
	require.NoError(t, err)
	assert.Equal(t, 1, i)

	_, err = r.FindPhone("3333333333")
	assert.ErrorIs(t, err, ErrPhoneNotFound)
}

func TestRecord_AddThenFindReturnsInsertionIndex(t *testing.T) {
	r := newTestRecord(t, "Alice", "1111111111", "2222222222")

	require.NoError(t, r.AddPhone("3333333333"))
	i, err := r.FindPhone("3333333333")

	require.NoError(t, err)
	assert.Equal(t, 2, i)
}

func TestRecord_EditPhone(t *testing.T) {
	t.Run("replaces only the edited index", func(t *testing.T) {
		r := newTestRecord(t, "Alice", "1111111111", "2222222222", "3333333333")

		require.NoError(t, r.EditPhone("2222222222", "9999999999"))

		assert.Equal(t, []string{"1111111111", "9999999999", "3333333333"}, phoneValues(r))
	})

	t.Run("missing old phone fails before validating new one", func(t *testing.T) {
		r := newTestRecord(t, "Alice", "1111111111")

		err := r.EditPhone("5555555555", "bad")

		assert.ErrorIs(t, err, ErrPhoneNotFound)
		assert.NotErrorIs(t, err, ErrInvalidPhone)
	})

	t.Run("invalid new phone leaves record unchanged", func(t *testing.T) {
		r := newTestRecord(t, "Alice", "1111111111", "2222222222")

		err := r.EditPhone("1111111111", "12")

		assert.ErrorIs(t, err, ErrInvalidPhone)
		assert.Equal(t, []string{"1111111111", "2222222222"}, phoneValues(r))
	})
}

func TestRecord_DeletePhone(t *testing.T) {
	t.Run("removes first match and shifts the rest", func(t *testing.T) {
		r := newTestRecord(t, "Alice", "1111111111", "2222222222", "1111111111", "3333333333")

		require.NoError(t, r.DeletePhone("1111111111"))

		assert.Equal(t, []string{"2222222222", "1111111111", "3333333333"}, phoneValues(r))
	})

	t.Run("missing phone", func(t *testing.T) {
		r := newTestRecord(t, "Alice", "1111111111")

		err := r.DeletePhone("2222222222")

		assert.ErrorIs(t, err, ErrPhoneNotFound)
		assert.Equal(t, []string{"1111111111"}, phoneValues(r))
	})
}

func TestRecord_PhonesIsACopy(t *testing.T) {
	r := newTestRecord(t, "Alice", "1111111111")

	phones := r.Phones()
	phones[0] = Phone{value: "0000000000"}

	assert.Equal(t, []string{"1111111111"}, phoneValues(r))
}

func TestRecord_PhoneAt(t *testing.T) {
	r := newTestRecord(t, "Alice", "1111111111")

	p, ok := r.PhoneAt(0)
	assert.True(t, ok)
	assert.Equal(t, "1111111111", p.String())

	_, ok = r.PhoneAt(1)
	assert.False(t, ok)
	_, ok = r.PhoneAt(-1)
	assert.False(t, ok)
}

func TestRecord_String(t *testing.T) {
	tests := []struct {
		name   string
		phones []string
		want   string
	}{
		{name: "no phones", want: "Contact name: Alice, phones: "},
		{name: "one phone", phones: []string{"1234567890"}, want: "Contact name: Alice, phones: 1234567890"},
		{
			name:   "two phones",
			phones: []string{"1234567890", "0987654321"},
			want:   "Contact name: Alice, phones: 1234567890; 0987654321",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestRecord(t, "Alice", tt.phones...)
			assert.Equal(t, tt.want, r.String())
		})
	}
}
