package globrm

// Version can be overridden at build time with
// -ldflags "-X 'globrm/pkg/globrm.Version=x.y.z'".
var Version = "1.0.2"
