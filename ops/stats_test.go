package ops

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const salesCSV = "Region,Amount\nNorth,10\nSouth,20\nNorth,30\nSouth,5\n"

func TestSumColumn(t *testing.T) {
	in := writeCSV(t, t.TempDir(), "in.csv", salesCSV)

	ok, msg := SumColumn(in, "", "Amount")
	require.True(t, ok)
	assert.Equal(t, "65", msg)
}

func TestSumColumn_SkipsNonNumeric(t *testing.T) {
	in := writeCSV(t, t.TempDir(), "in.csv", "Amount\n10\nn/a\n5\n")

	ok, msg := SumColumn(in, "", "Amount")
	require.True(t, ok)
	assert.Equal(t, "15", msg)
}

func TestSumColumn_NoNumericValues(t *testing.T) {
	in := writeCSV(t, t.TempDir(), "in.csv", "Amount\nfoo\nbar\n")

	ok, msg := SumColumn(in, "", "Amount")
	assert.False(t, ok)
	assert.Contains(t, msg, "no numeric values")
}

func TestAverageColumn(t *testing.T) {
	in := writeCSV(t, t.TempDir(), "in.csv", salesCSV)

	ok, msg := AverageColumn(in, "", "Amount")
	require.True(t, ok)
	assert.Equal(t, "16.25", msg)
}

func TestCountValues(t *testing.T) {
	in := writeCSV(t, t.TempDir(), "in.csv", "Name,Note\nAda,x\nGrace,\nAlan,y\n")

	ok, msg := CountValues(in, "", "Note")
	require.True(t, ok)
	assert.Equal(t, "2", msg)
}

func TestCountValues_EmptyColumnCountsRows(t *testing.T) {
	in := writeCSV(t, t.TempDir(), "in.csv", salesCSV)

	ok, msg := CountValues(in, "", "")
	require.True(t, ok)
	assert.Equal(t, "4", msg)
}

func TestMaxMinValue(t *testing.T) {
	in := writeCSV(t, t.TempDir(), "in.csv", salesCSV)

	ok, msg := MaxValue(in, "", "Amount")
	require.True(t, ok)
	assert.Equal(t, "30", msg)

	ok, msg = MinValue(in, "", "Amount")
	require.True(t, ok)
	assert.Equal(t, "5", msg)
}

func TestDeduplicate_AllColumns(t *testing.T) {
	in := writeCSV(t, t.TempDir(), "in.csv", "Name,City\nAda,London\nAda,London\nAda,Paris\n")

	ok, msg := Deduplicate(in, "", nil, "")
	require.True(t, ok, msg)
	assert.Contains(t, msg, "removed 1 duplicate rows")

	table := readCSVTable(t, in)
	assert.Len(t, table.Rows, 2)
}

func TestDeduplicate_NamedColumnsKeepFirst(t *testing.T) {
	in := writeCSV(t, t.TempDir(), "in.csv", "Name,City\nAda,London\nAda,Paris\nGrace,NYC\n")

	ok, msg := Deduplicate(in, "", []string{"Name"}, "")
	require.True(t, ok, msg)

	table := readCSVTable(t, in)
	require.Len(t, table.Rows, 2)
	assert.Equal(t, []string{"Ada", "London"}, table.Rows[0])
	assert.Equal(t, []string{"Grace", "NYC"}, table.Rows[1])
}

func TestGroupStatistics_Sum(t *testing.T) {
	in := writeCSV(t, t.TempDir(), "in.csv", salesCSV)

	ok, msg := GroupStatistics(in, "", "Region", "Amount", "sum")
	require.True(t, ok, msg)
	assert.Contains(t, msg, "North: 40")
	assert.Contains(t, msg, "South: 25")
}

func TestGroupStatistics_Mean(t *testing.T) {
	in := writeCSV(t, t.TempDir(), "in.csv", salesCSV)

	ok, msg := GroupStatistics(in, "", "Region", "Amount", "mean")
	require.True(t, ok, msg)
	assert.Contains(t, msg, "North: 20")
	assert.Contains(t, msg, "South: 12.5")
}

func TestGroupStatistics_UnsupportedAggregation(t *testing.T) {
	in := writeCSV(t, t.TempDir(), "in.csv", salesCSV)

	ok, msg := GroupStatistics(in, "", "Region", "Amount", "median")
	assert.False(t, ok)
	assert.Contains(t, msg, "unsupported aggregation")
}

func TestCalculateStatistics(t *testing.T) {
	in := writeCSV(t, t.TempDir(), "in.csv", salesCSV)

	ok, msg := CalculateStatistics(in, "", "Amount")
	require.True(t, ok, msg)
	assert.Equal(t, "count=4 sum=65 mean=16.25 min=5 max=30", msg)
}

func TestStats_UnknownColumn(t *testing.T) {
	in := writeCSV(t, t.TempDir(), "in.csv", salesCSV)

	ok, msg := SumColumn(in, "", "Revenue")
	assert.False(t, ok)
	assert.Contains(t, msg, `column "Revenue" does not exist`)
}
