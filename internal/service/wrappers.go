package service

// AuthServiceWrapper defines middleware composition for AuthService.
// Implementations wrap an existing AuthService to add behavior such as
// validation.
type AuthServiceWrapper interface {
	Wrap(AuthService) AuthService
}

// FileServiceWrapper defines middleware composition for FileService.
type FileServiceWrapper interface {
	Wrap(FileService) FileService
}
