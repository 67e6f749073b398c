package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	scopes       []string
	state        string
	responseType string
)

// authorizeURLCmd represents the authorize-url command
var authorizeURLCmd = &cobra.Command{
	Use:   "authorize-url",
	Short: "Build the OAuth authorization redirect URL",
	Long: `Build the URL to send a user to in order to begin the OAuth login flow.
No request is made; the URL is printed to stdout.`,
	Args: cobra.NoArgs,
	RunE: runAuthorizeURL,
}

// tokenCmd represents the token command
var tokenCmd = &cobra.Command{
	Use:   "token <code>",
	Short: "Exchange an authorization code for an access token",
	Args:  cobra.ExactArgs(1),
	RunE:  runToken,
}

// refreshCmd represents the refresh command
var refreshCmd = &cobra.Command{
	Use:   "refresh <refresh-token>",
	Short: "Exchange a refresh token for a new access token",
	Args:  cobra.ExactArgs(1),
	RunE:  runRefresh,
}

// revokeCmd represents the revoke command
var revokeCmd = &cobra.Command{
	Use:   "revoke <token>",
	Short: "Revoke an access or refresh token",
	Args:  cobra.ExactArgs(1),
	RunE:  runRevoke,
}

func init() {
	authorizeURLCmd.Flags().StringSliceVar(&scopes, "scope", nil, "requested permission scope (repeatable)")
	authorizeURLCmd.Flags().StringVar(&state, "state", "", "opaque value echoed back on the OAuth callback")
	authorizeURLCmd.Flags().StringVar(&responseType, "response-type", "code", "authorization flow response type")

	rootCmd.AddCommand(authorizeURLCmd)
	rootCmd.AddCommand(tokenCmd)
	rootCmd.AddCommand(refreshCmd)
	rootCmd.AddCommand(revokeCmd)
}

func runAuthorizeURL(cmd *cobra.Command, args []string) error {
	fmt.Println(uberClient.AuthorizeURL(scopes, state, responseType))
	return nil
}

func runToken(cmd *cobra.Command, args []string) error {
	logger.Info().Msg("Exchanging authorization code")

	result, err := uberClient.AccessToken(context.Background(), args[0])
	if err != nil {
		return err
	}
	return printResult(result)
}

func runRefresh(cmd *cobra.Command, args []string) error {
	logger.Info().Msg("Refreshing access token")

	result, err := uberClient.RefreshToken(context.Background(), args[0])
	if err != nil {
		return err
	}
	return printResult(result)
}

func runRevoke(cmd *cobra.Command, args []string) error {
	logger.Info().Msg("Revoking token")

	result, err := uberClient.RevokeToken(context.Background(), args[0])
	if err != nil {
		return err
	}
	return printResult(result)
}
