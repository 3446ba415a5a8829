package commands_test

import (
	"testing"

	"deliverynote/internal/core/application/usecases/commands"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateOrderCommand_ValidInput(t *testing.T) {
	cmd, err := commands.NewCreateOrderCommand(
		"DEL123456789", sampleRecipient(), decimal.NewFromInt(7), "Not specified", "Courier", referenceLines())

	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Equal(t, "DEL123456789", cmd.OrderNumber())
	assert.Equal(t, sampleRecipient(), cmd.Recipient())
	assert.True(t, decimal.NewFromInt(7).Equal(cmd.Weight()))
	assert.Equal(t, "Not specified", cmd.Dimensions())
	assert.Equal(t, "Courier", cmd.DeliveryMethod())
	assert.Equal(t, referenceLines(), cmd.Lines())
}

func TestNewCreateOrderCommand_CopiesLines(t *testing.T) {
	lines := referenceLines()
	cmd, err := commands.NewCreateOrderCommand("DEL1", sampleRecipient(), decimal.Zero, "", "", lines)
	require.NoError(t, err)

	lines[0].Quantity = 99
	cmd.Lines()[1].Quantity = 99

	assert.Equal(t, 1, cmd.Lines()[0].Quantity)
	assert.Equal(t, 1, cmd.Lines()[1].Quantity)
}

func TestNewCreateOrderCommand_EmptyOrderNumber(t *testing.T) {
	_, err := commands.NewCreateOrderCommand("", sampleRecipient(), decimal.Zero, "", "", referenceLines())

	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrOrderNumberIsRequired)
}

func TestNewCreateOrderCommand_NoLines(t *testing.T) {
	_, err := commands.NewCreateOrderCommand("DEL1", sampleRecipient(), decimal.Zero, "", "", nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrItemLinesAreRequired)
}

func TestNewCreateOrderCommand_InvalidInput(t *testing.T) {
	_, err := commands.NewCreateOrderCommand("", sampleRecipient(), decimal.Zero, "", "", nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrOrderNumberIsRequired)
	assert.ErrorIs(t, err, commands.ErrItemLinesAreRequired)
}

func TestCreateOrderCommand_NotConstructedViaConstructor(t *testing.T) {
	cmd := commands.CreateOrderCommand{}

	assert.ErrorIs(t, cmd.Validate(), commands.ErrCreateOrderCommandIsNotConstructed)
}
