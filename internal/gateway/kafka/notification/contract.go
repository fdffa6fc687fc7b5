//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=notification_test
package notification

type producer interface {
	Send(topic string, key string, payload []byte) (partition int32, offset int64, err error)
}
