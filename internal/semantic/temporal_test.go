package semantic

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stele/internal/errors"
)

func temporalErrors(t *testing.T, source string, current time.Time) []errors.CompilerError {
	t.Helper()
	checker := NewTemporalChecker()
	checker.Collect(parseProgram(t, source))
	return checker.Check(current)
}

func date(t *testing.T, value string) time.Time {
	t.Helper()
	d, err := time.Parse("2-1-2006", value)
	require.NoError(t, err)
	return d
}

func TestTemporalValidWindow(t *testing.T) {
	source := `
struct Credit {
    rate: Temporal<Percent, 01-01-2024, 31-12-2030>,
}
`
	assert.Empty(t, temporalErrors(t, source, date(t, "1-6-2024")))
}

func TestTemporalInvertedWindow(t *testing.T) {
	source := `
struct Credit {
    rate: Temporal<Percent, 31-12-2030, 01-01-2024>,
}
`
	errs := temporalErrors(t, source, date(t, "1-6-2024"))
	require.Len(t, errs, 1)
	assert.Equal(t, errors.ErrorInvertedValidity, errs[0].Code)
	assert.Contains(t, errs[0].Message, "Credit.rate")
}

func TestTemporalEqualBoundsAreInverted(t *testing.T) {
	source := `
struct Credit {
    rate: Temporal<Percent, 01-01-2024, 01-01-2024>,
}
`
	errs := temporalErrors(t, source, date(t, "1-6-2024"))
	require.Len(t, errs, 1, "valid_from must be strictly before valid_until")
	assert.Equal(t, errors.ErrorInvertedValidity, errs[0].Code)
}

func TestTemporalOpenEndedWindow(t *testing.T) {
	source := `
struct Credit {
    rate: Temporal<Percent, 01-01-2024>,
    base: Temporal<Percent>,
}
`
	assert.Empty(t, temporalErrors(t, source, date(t, "1-6-2024")),
		"missing bounds leave nothing to compare")
}

func TestTemporalExpiredSunset(t *testing.T) {
	source := `
struct Credit {
    #[sunset(31-12-2020)]
    rate: Percent,
}
`
	errs := temporalErrors(t, source, date(t, "1-6-2024"))
	require.Len(t, errs, 1)
	assert.Equal(t, errors.ErrorExpiredSunset, errs[0].Code)
	assert.Contains(t, errs[0].Message, "31-12-2020")

	assert.Empty(t, temporalErrors(t, source, date(t, "1-6-2019")),
		"a future sunset is fine")
}

func TestTemporalRetroactiveConflict(t *testing.T) {
	source := `
struct Credit {
    #[effective(01-01-2024)]
    #[retroactive(01-06-2024)]
    rate: Percent,
}
`
	errs := temporalErrors(t, source, date(t, "1-1-2025"))
	require.Len(t, errs, 1)
	assert.Equal(t, errors.ErrorRetroactiveConflict, errs[0].Code)
	assert.Contains(t, errs[0].Message, "postdates")
}

func TestTemporalRetroactiveBeforeEffective(t *testing.T) {
	source := `
struct Credit {
    #[effective(01-06-2024)]
    #[retroactive(01-01-2024)]
    rate: Percent,
}
`
	assert.Empty(t, temporalErrors(t, source, date(t, "1-1-2025")),
		"reaching back before the effective date is the point of retroactivity")
}

func TestTemporalRetroactiveWithoutEffective(t *testing.T) {
	source := `
struct Credit {
    #[retroactive(01-06-2024)]
    rate: Percent,
}
`
	assert.Empty(t, temporalErrors(t, source, date(t, "1-1-2025")),
		"no effective date means no conflict to detect")
}

func TestTemporalCollectsScopedStructs(t *testing.T) {
	source := `
scope Federal {
    struct Credit {
        rate: Temporal<Percent, 31-12-2030, 01-01-2024>,
    }
}
`
	errs := temporalErrors(t, source, date(t, "1-6-2024"))
	require.Len(t, errs, 1)
	assert.Equal(t, errors.ErrorInvertedValidity, errs[0].Code)
}

func TestTemporalFieldsAccessor(t *testing.T) {
	source := `
struct Credit {
    rate: Temporal<Percent, 01-01-2024, 31-12-2030>,
}
`
	checker := NewTemporalChecker()
	checker.Collect(parseProgram(t, source))

	fields := checker.Fields()
	require.Len(t, fields, 1)
	assert.Equal(t, "Credit.rate", fields[0].Key)
	require.NotNil(t, fields[0].ValidFrom)
	require.NotNil(t, fields[0].ValidUntil)
	assert.True(t, fields[0].ValidFrom.Before(*fields[0].ValidUntil))
}
