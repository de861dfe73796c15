package disk

type Manager interface {
	GetProvisioner() BlockDeviceProvisioner
	GetTableMutator() TableMutator
}
