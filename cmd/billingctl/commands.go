package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"paguezap/internal/adapter/http/dto/response"
	"paguezap/internal/domain/entities"
	"paguezap/internal/usecase"

	"github.com/spf13/cobra"
)

var errCommandFailed = errors.New("command failed")

type services struct {
	lifecycle      usecase.IChargeLifecycleUseCase
	reconciliation usecase.IReconciliationUseCase
	settings       usecase.ISettingsUseCase
	close          func() error
}

type servicesFunc func(ctx context.Context) (*services, error)

func newRootCmd(build servicesFunc) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "billingctl",
		Short:         "Operate PagueZap charges from the command line",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(processChargesCmd(build))
	rootCmd.AddCommand(sendCmd(build))
	rootCmd.AddCommand(cancelCmd(build))
	rootCmd.AddCommand(reconcileCmd(build))
	rootCmd.AddCommand(reconcileChargeCmd(build))
	rootCmd.AddCommand(testWhatsAppCmd(build))
	rootCmd.AddCommand(testMercadoPagoCmd(build))

	return rootCmd
}

// withServices builds the services for one command run and closes them after.
func withServices(cmd *cobra.Command, build servicesFunc, fn func(ctx context.Context, s *services) error) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	s, err := build(ctx)
	if err != nil {
		return err
	}
	if s.close != nil {
		defer s.close()
	}
	return fn(ctx, s)
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func processChargesCmd(build servicesFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "process-charges",
		Short: "Send every scheduled charge that is due",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withServices(cmd, build, func(ctx context.Context, s *services) error {
				results, err := s.lifecycle.ProcessScheduledCharges(ctx)
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), response.FromBatchResults(results))
			})
		},
	}
}

func sendCmd(build servicesFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "send [charge-id]",
		Short: "Send one charge to its customer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withServices(cmd, build, func(ctx context.Context, s *services) error {
				res, err := s.lifecycle.SendCharge(ctx, args[0])
				if printErr := printJSON(cmd.OutOrStdout(), response.FromSendChargeResult(res)); printErr != nil {
					return printErr
				}
				if err != nil {
					return fmt.Errorf("send %s: %w", args[0], err)
				}
				return nil
			})
		},
	}
}

func cancelCmd(build servicesFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "cancel [charge-id]",
		Short: "Cancel a charge",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withServices(cmd, build, func(ctx context.Context, s *services) error {
				charge, err := s.lifecycle.CancelCharge(ctx, args[0])
				if err != nil {
					return fmt.Errorf("cancel %s: %w", args[0], err)
				}
				return printJSON(cmd.OutOrStdout(), response.FromCharge(charge))
			})
		},
	}
}

func reconcileCmd(build servicesFunc) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reconcile",
		Short: "Replay a Mercado Pago payment notification",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			paymentID, _ := cmd.Flags().GetString("payment-id")
			tenantID, _ := cmd.Flags().GetString("tenant")
			return withServices(cmd, build, func(ctx context.Context, s *services) error {
				raw, _ := json.Marshal(map[string]any{
					"type": usecase.NotificationTypePayment,
					"data": map[string]string{"id": paymentID},
				})
				outcome := s.reconciliation.HandleNotification(ctx, usecase.PaymentNotification{
					Type:       usecase.NotificationTypePayment,
					PaymentID:  paymentID,
					TenantHint: tenantID,
					Raw:        raw,
				})
				if err := printJSON(cmd.OutOrStdout(), outcome); err != nil {
					return err
				}
				if outcome.Status == entities.ReconciliationRejected {
					return errCommandFailed
				}
				return nil
			})
		},
	}

	cmd.Flags().String("payment-id", "", "Processor payment id")
	cmd.Flags().String("tenant", "", "Tenant id hint")
	_ = cmd.MarkFlagRequired("payment-id")

	return cmd
}

func reconcileChargeCmd(build servicesFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "reconcile-charge [charge-id]",
		Short: "Look up a charge's payment at Mercado Pago and apply its status",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withServices(cmd, build, func(ctx context.Context, s *services) error {
				outcome, err := s.reconciliation.ReconcileCharge(ctx, args[0])
				if err != nil {
					return fmt.Errorf("reconcile %s: %w", args[0], err)
				}
				return printJSON(cmd.OutOrStdout(), outcome)
			})
		},
	}
}

func testWhatsAppCmd(build servicesFunc) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "test-whatsapp",
		Short: "Check WhatsApp Cloud API credentials",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			phoneNumberID, _ := cmd.Flags().GetString("phone-number-id")
			accessToken, _ := cmd.Flags().GetString("access-token")
			return withServices(cmd, build, func(ctx context.Context, s *services) error {
				res, err := s.settings.TestWhatsApp(ctx, entities.MessagingCredentials{
					PhoneNumberID: phoneNumberID,
					AccessToken:   accessToken,
				})
				return printConnection(cmd.OutOrStdout(), res, err)
			})
		},
	}

	cmd.Flags().String("phone-number-id", "", "WhatsApp phone number id")
	cmd.Flags().String("access-token", "", "WhatsApp access token")

	return cmd
}

func testMercadoPagoCmd(build servicesFunc) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "test-mercadopago",
		Short: "Check a Mercado Pago access token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			accessToken, _ := cmd.Flags().GetString("access-token")
			return withServices(cmd, build, func(ctx context.Context, s *services) error {
				res, err := s.settings.TestMercadoPago(ctx, accessToken)
				return printConnection(cmd.OutOrStdout(), res, err)
			})
		},
	}

	cmd.Flags().String("access-token", "", "Mercado Pago access token")

	return cmd
}

func printConnection(w io.Writer, res entities.ConnectionResult, err error) error {
	if err != nil && !errors.Is(err, usecase.ErrConnectionFailed) {
		return err
	}
	if printErr := printJSON(w, response.FromConnectionResult(res)); printErr != nil {
		return printErr
	}
	return err
}
