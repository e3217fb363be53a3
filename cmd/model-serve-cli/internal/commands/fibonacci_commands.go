package commands

import (
	"fmt"
	"strings"

	"model_serving_service/internal/domain/fibonacci"
	"model_serving_service/internal/pkg/logger"

	"github.com/spf13/cobra"
)

// FibonacciCommandHandler encapsulates logic for handling Fibonacci operations via CLI.
type FibonacciCommandHandler struct {
	logger logger.Logger
}

// NewFibonacciCommandHandler initializes and returns a FibonacciCommandHandler instance
// with a configured logger.
func NewFibonacciCommandHandler() (*FibonacciCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	return &FibonacciCommandHandler{
		logger: loggerInstance,
	}, nil
}

// FibCmd computes a single Fibonacci number
func (commandHandler *FibonacciCommandHandler) FibCmd(cmd *cobra.Command, _ []string) {
	index, err := cmd.Flags().GetInt("index")
	if err != nil {
		commandHandler.logger.Error("invalid index flag ", err)
		return
	}

	iterative, err := cmd.Flags().GetBool("iterative")
	if err != nil {
		commandHandler.logger.Error("invalid iterative flag ", err)
		return
	}

	var value uint64
	if iterative {
		value, err = fibonacci.Iterative(index)
	} else {
		value, err = fibonacci.Memoized(index)
	}
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	fmt.Printf("F(%d) = %d\n", index, value)
}

// FibSequenceCmd prints the first count Fibonacci numbers
func (commandHandler *FibonacciCommandHandler) FibSequenceCmd(cmd *cobra.Command, _ []string) {
	count, err := cmd.Flags().GetInt("count")
	if err != nil {
		commandHandler.logger.Error("invalid count flag ", err)
		return
	}

	sequence, err := fibonacci.Sequence(count)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	formatted := make([]string, len(sequence))
	for i, value := range sequence {
		formatted[i] = fmt.Sprintf("%d", value)
	}
	fmt.Println(strings.Join(formatted, ", "))
}

// InitFibonacciCommands registers Fibonacci-related commands
func InitFibonacciCommands(rootCmd *cobra.Command) error {
	handler, err := NewFibonacciCommandHandler()

	if err != nil {
		return fmt.Errorf("failed to create Fibonacci command handler %w", err)
	}

	var fibCmd = &cobra.Command{
		Use:   "fib",
		Short: "Compute a Fibonacci number",
		Run:   handler.FibCmd,
	}
	fibCmd.Flags().IntP("index", "", 0, "Index of the Fibonacci number to compute (0-93)")
	fibCmd.Flags().BoolP("iterative", "", false, "Use the iterative implementation instead of the memoized one")
	rootCmd.AddCommand(fibCmd)

	var fibSequenceCmd = &cobra.Command{
		Use:   "fib-sequence",
		Short: "Print the first N Fibonacci numbers",
		Run:   handler.FibSequenceCmd,
	}
	fibSequenceCmd.Flags().IntP("count", "", 10, "How many Fibonacci numbers to print (0-94)")
	rootCmd.AddCommand(fibSequenceCmd)

	return nil
}
