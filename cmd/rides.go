package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vivanb/uberctl/uber"
)

var (
	customerUUID string
	productID    string
)

// productsCmd represents the products command
var productsCmd = &cobra.Command{
	Use:   "products <latitude> <longitude>",
	Short: "List the products available at a location",
	Args:  cobra.ExactArgs(2),
	RunE:  runProducts,
}

// priceCmd represents the price command
var priceCmd = &cobra.Command{
	Use:   "price <start-lat> <start-lng> <end-lat> <end-lng>",
	Short: "Get fare estimates between two locations",
	Args:  cobra.ExactArgs(4),
	RunE:  runPrice,
}

// timeCmd represents the time command
var timeCmd = &cobra.Command{
	Use:   "time <start-lat> <start-lng>",
	Short: "Get pickup ETAs for a location",
	Args:  cobra.ExactArgs(2),
	RunE:  runTime,
}

// promotionsCmd represents the promotions command
var promotionsCmd = &cobra.Command{
	Use:   "promotions <start-lat> <start-lng> <end-lat> <end-lng>",
	Short: "Get promotions available for a trip",
	Args:  cobra.ExactArgs(4),
	RunE:  runPromotions,
}

func init() {
	timeCmd.Flags().StringVar(&customerUUID, "customer", "", "restrict the estimate to a customer UUID")
	timeCmd.Flags().StringVar(&productID, "product", "", "restrict the estimate to a product ID")

	rootCmd.AddCommand(productsCmd)
	rootCmd.AddCommand(priceCmd)
	rootCmd.AddCommand(timeCmd)
	rootCmd.AddCommand(promotionsCmd)
}

func runProducts(cmd *cobra.Command, args []string) error {
	coords, err := parseCoords(args)
	if err != nil {
		return err
	}

	logger.Info().Float64("latitude", coords[0]).Float64("longitude", coords[1]).Msg("Fetching products")

	result, err := uberClient.Products(context.Background(), coords[0], coords[1])
	if err != nil {
		return err
	}
	return printResult(result)
}

func runPrice(cmd *cobra.Command, args []string) error {
	coords, err := parseCoords(args)
	if err != nil {
		return err
	}

	logger.Info().Msg("Fetching price estimates")

	result, err := uberClient.PriceEstimate(context.Background(), coords[0], coords[1], coords[2], coords[3])
	if err != nil {
		return err
	}
	return printResult(result)
}

func runTime(cmd *cobra.Command, args []string) error {
	coords, err := parseCoords(args)
	if err != nil {
		return err
	}

	logger.Info().Msg("Fetching time estimates")

	result, err := uberClient.TimeEstimate(context.Background(), coords[0], coords[1], uber.TimeEstimateParams{
		CustomerUUID: customerUUID,
		ProductID:    productID,
	})
	if err != nil {
		return err
	}
	return printResult(result)
}

func runPromotions(cmd *cobra.Command, args []string) error {
	coords, err := parseCoords(args)
	if err != nil {
		return err
	}

	logger.Info().Msg("Fetching promotions")

	result, err := uberClient.Promotions(context.Background(), coords[0], coords[1], coords[2], coords[3])
	if err != nil {
		return err
	}
	return printResult(result)
}

// parseCoords parses every positional argument as a coordinate.
func parseCoords(args []string) ([]float64, error) {
	coords := make([]float64, len(args))
	for i, arg := range args {
		v, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid coordinate %q: %w", arg, err)
		}
		coords[i] = v
	}
	return coords, nil
}

// printResult pretty-prints an API result to stdout.
func printResult(result uber.Result) error {
	var buf bytes.Buffer
	if err := json.Indent(&buf, result, "", "  "); err != nil {
		return err
	}
	buf.WriteByte('\n')
	_, err := buf.WriteTo(os.Stdout)
	return err
}
