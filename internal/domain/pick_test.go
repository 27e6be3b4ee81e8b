package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_ParsePickLabel(t *testing.T) {
	t.Run("round trips the original label", func(t *testing.T) {
		for _, name := range []string{
			"2025 Round 1",
			"2025 Round 4",
			"2026 Round 2",
			"2028 Round 3",
		} {
			label, err := ParsePickLabel(name)
			require.NoError(t, err)
			require.Equal(t, name, label.String())
		}
	})

	t.Run("parses year and round", func(t *testing.T) {
		label, err := ParsePickLabel("2026 Round 3")
		require.NoError(t, err)
		require.Equal(t, PickLabel{Year: 2026, Round: 3}, label)
	})

	t.Run("rejects malformed labels", func(t *testing.T) {
		for _, name := range []string{
			"",
			"2025",
			"2025 Round",
			"2025 Rnd 1",
			"Round 1",
			"2025 Round one",
			"2025 Round 0",
		} {
			_, err := ParsePickLabel(name)
			require.Error(t, err, "expected error for %q", name)
		}
	})
}

func Test_PickLabel_SlotName(t *testing.T) {
	label := PickLabel{Year: 2025, Round: 1}
	require.Equal(t, "2025 Pick 1.02", label.SlotName(2))
	require.Equal(t, "2025 Pick 1.12", label.SlotName(12))
}

func Test_PickLabel_GenericName(t *testing.T) {
	require.Equal(t, "2026 1st", PickLabel{Year: 2026, Round: 1}.GenericName())
	require.Equal(t, "2026 2nd", PickLabel{Year: 2026, Round: 2}.GenericName())
	require.Equal(t, "2027 3rd", PickLabel{Year: 2027, Round: 3}.GenericName())
	require.Equal(t, "2026 4th", PickLabel{Year: 2026, Round: 4}.GenericName())
}
