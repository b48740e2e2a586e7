package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jizhang/internal/core"
	"jizhang/internal/store/memory"
)

type stubPublisher struct {
	batches [][]core.ExpenseRecord
	err     error
}

func (p *stubPublisher) PublishRecords(_ context.Context, _ string, records []core.ExpenseRecord) error {
	p.batches = append(p.batches, records)
	return p.err
}

func TestCreateFromTextStoresAndPublishes(t *testing.T) {
	pub := &stubPublisher{}
	svc := NewRecordService(memory.New(), pub)

	stored, err := svc.CreateFromText(context.Background(), "午饭花了30元")
	require.NoError(t, err)
	require.Len(t, stored, 1)

	assert.NotEmpty(t, stored[0].ID)
	assert.Equal(t, 30.0, stored[0].Amount)
	assert.Equal(t, core.CategoryFood, stored[0].Category)

	require.Len(t, pub.batches, 1)
	assert.Equal(t, stored[0].ExpenseRecord, pub.batches[0][0])
}

func TestCreateFromTextNoAmounts(t *testing.T) {
	pub := &stubPublisher{}
	svc := NewRecordService(memory.New(), pub)

	stored, err := svc.CreateFromText(context.Background(), "今天天气不错")
	require.NoError(t, err)
	assert.Empty(t, stored)
	assert.Empty(t, pub.batches)
}

func TestCreateFromTextPublishFailureIsSwallowed(t *testing.T) {
	st := memory.New()
	pub := &stubPublisher{err: errors.New("broker down")}
	svc := NewRecordService(st, pub)

	stored, err := svc.CreateFromText(context.Background(), "打车25元")
	require.NoError(t, err)
	require.Len(t, stored, 1)

	listed, err := st.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, listed, 1)
}

func TestCreateFromTextWithoutPublisher(t *testing.T) {
	svc := NewRecordService(memory.New(), nil)

	stored, err := svc.CreateFromText(context.Background(), "买咖啡15元")
	require.NoError(t, err)
	assert.Len(t, stored, 1)
}

func TestOverview(t *testing.T) {
	st := memory.New()
	svc := NewRecordService(st, nil)

	for _, r := range []core.ExpenseRecord{
		{Date: "2024-03-15", Amount: 30, Category: core.CategoryFood, Note: "午饭"},
		{Date: "2024-03-15", Amount: 20, Category: core.CategoryTransport, Note: "打车"},
	} {
		_, err := st.Append(context.Background(), r)
		require.NoError(t, err)
	}

	result, err := svc.Overview(context.Background(), core.PeriodAll)
	require.NoError(t, err)

	assert.Equal(t, 50.0, result.TotalAmount)
	assert.Equal(t, 2, result.Count)
	assert.Equal(t, "全部时间", result.Period)
	require.Len(t, result.CategoryDetail, 2)
	assert.Equal(t, core.CategoryFood, result.CategoryDetail[0].Category)
}

func TestOverviewEmptyStore(t *testing.T) {
	svc := NewRecordService(memory.New(), nil)

	result, err := svc.Overview(context.Background(), core.PeriodWeek)
	require.NoError(t, err)
	assert.Equal(t, 0, result.Count)
	assert.Equal(t, "暂无消费数据", result.Summary)
}
