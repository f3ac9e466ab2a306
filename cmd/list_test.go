package cmd

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/scopegate/internal/domain"
	mockDomain "github.com/mouse-blink/scopegate/internal/domain/mocks"
	m "github.com/mouse-blink/scopegate/internal/model"
)

func TestListCmd(t *testing.T) {
	t.Run("lists every argument", func(t *testing.T) {
		wf := mockDomain.NewMockWorkflow(t)
		wf.EXPECT().List(mock.Anything, domain.ListArgs{Documents: []m.Path{"shot010.yaml", "shots"}}).Return(nil)

		_, _, err := execute(t, wf, "list", "shot010.yaml", "shots")
		require.NoError(t, err)
	})

	t.Run("requires a document", func(t *testing.T) {
		_, _, err := execute(t, mockDomain.NewMockWorkflow(t), "list")
		assert.Error(t, err)
	})

	t.Run("returns workflow errors", func(t *testing.T) {
		boom := errors.New("boom")

		wf := mockDomain.NewMockWorkflow(t)
		wf.EXPECT().List(mock.Anything, mock.Anything).Return(boom)

		_, _, err := execute(t, wf, "list", "shots")
		assert.ErrorIs(t, err, boom)
	})
}
